// Package knowledge holds the static knowledge tables that drive insight and
// innovation generation: technology domains, cross-domain innovation patterns,
// problem-solving methodologies, and emerging technologies. All lookups are
// total; callers always get a usable record back.
package knowledge

// TechDomain describes one technology field with its core concepts, current
// trends, and common challenges.
type TechDomain struct {
	Concepts   []string
	Trends     []string
	Challenges []string
}

// TechDomainKeys lists the tech-domain keys in a fixed order.
var TechDomainKeys = []string{
	"artificial_intelligence",
	"software_development",
	"healthcare",
	"finance",
	"education",
	"sustainability",
	"manufacturing",
	"transportation",
}

var TechDomains = map[string]TechDomain{
	"artificial_intelligence": {
		Concepts: []string{
			"Machine Learning", "Neural Networks", "Deep Learning", "Natural Language Processing",
			"Computer Vision", "Reinforcement Learning", "Expert Systems", "Knowledge Graphs",
			"Generative AI", "Explainable AI", "Edge AI", "Transfer Learning",
		},
		Trends: []string{
			"AI democratization across industries",
			"Increasing focus on ethical AI and governance",
			"Integration of AI with IoT and edge computing",
			"Multimodal AI systems combining text, vision, and audio",
			"Growth in synthetic data generation for training",
			"Rise of foundation models with broad capabilities",
		},
		Challenges: []string{
			"Data privacy and regulatory compliance",
			"Computational resource requirements",
			"Bias and fairness in AI systems",
			"Explainability of complex models",
			"Integration with legacy systems",
			"Talent shortage in specialized AI roles",
		},
	},
	"software_development": {
		Concepts: []string{
			"Agile Methodology", "DevOps", "Microservices", "Continuous Integration",
			"Test-Driven Development", "API Design", "Software Architecture",
			"Cloud-Native Development", "Serverless Computing", "Infrastructure as Code",
		},
		Trends: []string{
			"Shift-left security integration in development lifecycle",
			"Low-code and no-code development platforms",
			"Containerization and orchestration becoming standard",
			"API-first design approaches",
			"Increased adoption of GitOps workflows",
			"Growing focus on developer experience and productivity",
		},
		Challenges: []string{
			"Technical debt management",
			"Balancing speed and quality",
			"Security integration in fast-paced environments",
			"Cross-team coordination in distributed development",
			"Maintaining system reliability at scale",
			"Adapting to rapidly evolving technologies",
		},
	},
	"healthcare": {
		Concepts: []string{
			"Electronic Health Records", "Telemedicine", "Clinical Decision Support",
			"Medical Imaging", "Personalized Medicine", "Health Informatics",
			"Remote Patient Monitoring", "Drug Discovery", "Genomics",
		},
		Trends: []string{
			"AI-assisted diagnosis and treatment planning",
			"Expansion of virtual care delivery models",
			"Integration of wearable health data into clinical systems",
			"Use of digital twins for treatment simulation",
			"Precision medicine tailored to genetic profiles",
			"Blockchain for secure health data exchange",
		},
		Challenges: []string{
			"Data interoperability between systems",
			"Patient privacy and data security",
			"Regulatory compliance (HIPAA, FDA, etc.)",
			"Clinician adoption of new technologies",
			"Integration of AI into clinical workflows",
			"Equitable access to digital health solutions",
		},
	},
	"finance": {
		Concepts: []string{
			"Algorithmic Trading", "Risk Management", "Blockchain", "Digital Banking",
			"Regtech", "Payment Processing", "Fraud Detection", "Asset Management",
			"Decentralized Finance", "Financial Inclusion",
		},
		Trends: []string{
			"Open banking and API-based financial services",
			"AI for personalized financial advice and planning",
			"Integration of ESG factors in investment decisions",
			"Central bank digital currencies exploration",
			"Embedded finance in non-financial applications",
			"Hyper-personalization of financial products",
		},
		Challenges: []string{
			"Cybersecurity threats and fraud prevention",
			"Regulatory compliance across jurisdictions",
			"Legacy system modernization",
			"Data privacy and ethical use of customer information",
			"Financial inclusion for underserved populations",
			"Balancing innovation with stability and risk",
		},
	},
	"education": {
		Concepts: []string{
			"E-Learning", "Adaptive Learning", "Learning Management Systems",
			"Educational Assessment", "Gamification", "Microlearning",
			"Collaborative Learning", "Personalized Education", "MOOCs",
		},
		Trends: []string{
			"AI-powered personalized learning paths",
			"Mixed reality for immersive learning experiences",
			"Microlearning and bite-sized content delivery",
			"Skills-based credentialing and certification",
			"Data-driven educational decision making",
			"Lifelong learning and continuing education platforms",
		},
		Challenges: []string{
			"Digital divide and equitable access",
			"Measuring effectiveness of digital learning",
			"Student engagement in virtual environments",
			"Teacher training for technology integration",
			"Data privacy in educational settings",
			"Balancing technology with human interaction",
		},
	},
	"sustainability": {
		Concepts: []string{
			"Renewable Energy", "Circular Economy", "Carbon Footprint",
			"Sustainable Agriculture", "ESG Metrics", "Green Building",
			"Conservation Technology", "Climate Modeling", "Clean Water",
		},
		Trends: []string{
			"IoT-enabled resource monitoring and optimization",
			"AI-driven climate modeling and prediction",
			"Blockchain for supply chain sustainability tracking",
			"Growth of carbon capture and utilization technologies",
			"Sustainable materials innovation and adoption",
			"Integration of circular economy principles in business",
		},
		Challenges: []string{
			"Measuring and verifying sustainability impacts",
			"Economically viable implementation at scale",
			"Regulatory framework variations by region",
			"Behavior change among consumers and businesses",
			"Balancing short-term costs with long-term benefits",
			"Coordinating global action on climate challenges",
		},
	},
	"manufacturing": {
		Concepts: []string{
			"Industry 4.0", "Lean Manufacturing", "Digital Twin", "Predictive Maintenance",
			"Supply Chain Management", "Robotics", "Additive Manufacturing",
			"Quality Control", "Smart Factory", "Industrial IoT",
		},
		Trends: []string{
			"Lights-out manufacturing and autonomous factories",
			"Digital twins for process optimization",
			"AI-driven predictive maintenance",
			"Reshoring and nearshoring of production",
			"Implementation of cobots in mixed human-robot environments",
			"Real-time supply chain visibility and agility",
		},
		Challenges: []string{
			"Skills gap for advanced manufacturing technologies",
			"Legacy equipment integration with digital systems",
			"Cybersecurity in interconnected industrial environments",
			"Supply chain resilience and disruption management",
			"Balancing automation with workforce considerations",
			"Sustainable production practices implementation",
		},
	},
	"transportation": {
		Concepts: []string{
			"Autonomous Vehicles", "Electric Mobility", "Smart Infrastructure",
			"Last-Mile Delivery", "Mobility as a Service", "Traffic Management",
			"Connected Vehicles", "Logistics Optimization", "Multimodal Transportation",
		},
		Trends: []string{
			"Electrification of commercial and passenger fleets",
			"Growth of autonomous vehicle pilot deployments",
			"Smart city integration with transportation systems",
			"Expansion of mobility-as-a-service platforms",
			"Use of AI for logistics and route optimization",
			"Development of urban air mobility solutions",
		},
		Challenges: []string{
			"Regulatory frameworks for autonomous systems",
			"Charging infrastructure for electric vehicles",
			"Safety and liability in autonomous transportation",
			"Integration of multiple transportation modes",
			"Reducing environmental impact of transportation",
			"Balancing urban mobility needs with space constraints",
		},
	},
}

// CrossDomainPattern is a named, reusable innovation heuristic with real-world
// examples of its application.
type CrossDomainPattern struct {
	Pattern     string
	Description string
	Examples    []string
}

var CrossDomainPatterns = []CrossDomainPattern{
	{
		Pattern:     "Biomimicry",
		Description: "Adapting solutions from nature to solve technical challenges",
		Examples: []string{
			"Velcro inspired by plant burrs",
			"Wind turbine blades designed like whale fins",
			"Bullet train fronts modeled after kingfisher beaks",
		},
	},
	{
		Pattern:     "Platform Business Model",
		Description: "Creating value by facilitating exchanges between producers and consumers",
		Examples: []string{
			"Ridesharing platforms connecting drivers and passengers",
			"E-commerce marketplaces connecting sellers and buyers",
			"Educational platforms connecting instructors and students",
		},
	},
	{
		Pattern:     "Servitization",
		Description: "Transforming products into service-based offerings",
		Examples: []string{
			"Software-as-a-Service instead of licensed software",
			"Equipment-as-a-Service with usage-based pricing",
			"Product-service systems combining physical goods with services",
		},
	},
	{
		Pattern:     "Crowdsourcing",
		Description: "Distributing tasks to a large group of participants",
		Examples: []string{
			"Open innovation challenges for R&D",
			"Citizen science for data collection",
			"Crowdfunding for project financing",
		},
	},
	{
		Pattern:     "Gamification",
		Description: "Applying game design elements in non-game contexts",
		Examples: []string{
			"Loyalty programs with points and rewards",
			"Learning platforms with achievements and levels",
			"Fitness apps with challenges and competitions",
		},
	},
	{
		Pattern:     "Circular Systems",
		Description: "Designing out waste and pollution through continuous use of resources",
		Examples: []string{
			"Refurbished electronics programs",
			"Biodegradable packaging materials",
			"Closed-loop manufacturing systems",
		},
	},
	{
		Pattern:     "Digital Twins",
		Description: "Creating virtual replicas of physical entities to simulate and optimize",
		Examples: []string{
			"Factory simulation for process optimization",
			"Building management for energy efficiency",
			"Medical twins for treatment planning",
		},
	},
	{
		Pattern:     "Behavioral Economics Application",
		Description: "Using psychological insights to influence decision-making",
		Examples: []string{
			"Default options for organ donation",
			"Pre-commitment strategies for savings",
			"Social proof in marketing messages",
		},
	},
}

// Methodology is a structured problem-solving framework.
type Methodology struct {
	Name       string
	Phases     []string
	BestFor    string
	Techniques []string
}

var Methodologies = []Methodology{
	{
		Name:    "Design Thinking",
		Phases:  []string{"Empathize", "Define", "Ideate", "Prototype", "Test"},
		BestFor: "User-centered innovation and experience design",
		Techniques: []string{
			"User interviews", "Journey mapping", "Personas", "Brainstorming",
			"Rapid prototyping", "Usability testing",
		},
	},
	{
		Name:    "Lean Startup",
		Phases:  []string{"Build", "Measure", "Learn"},
		BestFor: "Market validation and iterative product development",
		Techniques: []string{
			"Minimum viable product", "A/B testing", "Customer development",
			"Pivot analysis", "Growth metrics", "Cohort analysis",
		},
	},
	{
		Name:    "Six Sigma",
		Phases:  []string{"Define", "Measure", "Analyze", "Improve", "Control"},
		BestFor: "Quality improvement and process optimization",
		Techniques: []string{
			"Process mapping", "Statistical analysis", "Root cause analysis",
			"Design of experiments", "Control charts", "Failure mode effects analysis",
		},
	},
	{
		Name:    "TRIZ",
		Phases:  []string{"Problem Definition", "Contradiction Analysis", "Resource Analysis", "Ideal Solution", "Pattern Application"},
		BestFor: "Engineering problems and technical innovation",
		Techniques: []string{
			"Contradiction matrix", "40 Inventive principles", "Technological evolution patterns",
			"Substance-field analysis", "Ideality concept",
		},
	},
	{
		Name:    "Agile",
		Phases:  []string{"Plan", "Implement", "Review", "Adapt"},
		BestFor: "Adaptive planning and incremental delivery",
		Techniques: []string{
			"User stories", "Sprint planning", "Daily standups",
			"Retrospectives", "Continuous integration", "Kanban boards",
		},
	},
	{
		Name:    "Systems Thinking",
		Phases:  []string{"Identify System", "Map Relationships", "Analyze Dynamics", "Model Behavior", "Intervene Strategically"},
		BestFor: "Complex problems with multiple interconnected elements",
		Techniques: []string{
			"Causal loop diagrams", "Stock and flow models", "System archetypes",
			"Leverage point analysis", "Scenario planning",
		},
	},
	{
		Name:    "Scenario Planning",
		Phases:  []string{"Define Scope", "Identify Drivers", "Develop Scenarios", "Implications Analysis", "Strategy Development"},
		BestFor: "Long-term planning under uncertainty",
		Techniques: []string{
			"Trend analysis", "Cross-impact assessment", "Scenario matrix",
			"Wind tunneling", "Robust strategy development",
		},
	},
	{
		Name:    "Blue Ocean Strategy",
		Phases:  []string{"Reconstruct Market Boundaries", "Focus on Big Picture", "Reach Beyond Demand", "Get Strategic Sequence Right"},
		BestFor: "Creating uncontested market space",
		Techniques: []string{
			"Strategy canvas", "Four actions framework", "Buyer utility map",
			"Non-customer analysis", "Value innovation",
		},
	},
}

// EmergingTechnology describes a technology with disruptive potential. The
// maturity and disruption fields gate which ones appear at a given innovation
// level.
type EmergingTechnology struct {
	Technology          string
	Maturity            string
	DisruptionPotential string
	Applications        []string
}

const (
	MaturityEarly    = "Early"
	MaturityEmerging = "Emerging"
	MaturityGrowing  = "Growing"

	DisruptionHigh     = "High"
	DisruptionVeryHigh = "Very High"
)

var EmergingTechnologies = []EmergingTechnology{
	{
		Technology:          "Quantum Computing",
		Maturity:            MaturityEmerging,
		DisruptionPotential: DisruptionHigh,
		Applications: []string{
			"Complex optimization problems",
			"Cryptography and security",
			"Drug discovery and molecular simulation",
			"Financial modeling and risk assessment",
			"Materials science research",
		},
	},
	{
		Technology:          "Digital Twin Systems",
		Maturity:            MaturityGrowing,
		DisruptionPotential: "Medium-High",
		Applications: []string{
			"Predictive maintenance in manufacturing",
			"Urban planning and smart cities",
			"Healthcare patient monitoring",
			"Supply chain optimization",
			"Product design and testing",
		},
	},
	{
		Technology:          "Extended Reality (AR/VR/MR)",
		Maturity:            MaturityGrowing,
		DisruptionPotential: "Medium-High",
		Applications: []string{
			"Immersive training and education",
			"Remote maintenance and support",
			"Collaborative design and visualization",
			"Retail customer experiences",
			"Therapeutic and rehabilitation applications",
		},
	},
	{
		Technology:          "Edge AI",
		Maturity:            MaturityGrowing,
		DisruptionPotential: "Medium-High",
		Applications: []string{
			"Real-time video analysis",
			"Smart manufacturing quality control",
			"Autonomous vehicle systems",
			"IoT data processing",
			"Privacy-preserving AI applications",
		},
	},
	{
		Technology:          "Synthetic Biology",
		Maturity:            MaturityEmerging,
		DisruptionPotential: DisruptionHigh,
		Applications: []string{
			"Novel materials creation",
			"Sustainable manufacturing",
			"Personalized medicine",
			"Agricultural yield improvement",
			"Bioremediation and environmental cleanup",
		},
	},
	{
		Technology:          "Brain-Computer Interfaces",
		Maturity:            MaturityEarly,
		DisruptionPotential: DisruptionVeryHigh,
		Applications: []string{
			"Disability assistance",
			"Direct computer control",
			"Cognitive enhancement",
			"Mental health treatment",
			"Advanced human-machine collaboration",
		},
	},
	{
		Technology:          "Advanced Energy Storage",
		Maturity:            MaturityGrowing,
		DisruptionPotential: DisruptionHigh,
		Applications: []string{
			"Renewable energy integration",
			"Electric vehicle range extension",
			"Grid stabilization",
			"Portable electronics",
			"Remote area power systems",
		},
	},
	{
		Technology:          "Autonomous Systems",
		Maturity:            MaturityGrowing,
		DisruptionPotential: DisruptionHigh,
		Applications: []string{
			"Transportation and logistics",
			"Agriculture and farming",
			"Infrastructure inspection",
			"Warehouse operations",
			"Space exploration",
		},
	},
}

// HighPotentialTechnologies returns the emerging technologies whose disruption
// potential is High or Very High.
func HighPotentialTechnologies() []EmergingTechnology {
	var out []EmergingTechnology
	for _, t := range EmergingTechnologies {
		if t.DisruptionPotential == DisruptionHigh || t.DisruptionPotential == DisruptionVeryHigh {
			out = append(out, t)
		}
	}
	return out
}
