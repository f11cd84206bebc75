package knowledge

// Technology is a named technology tagged with a category.
type Technology struct {
	Technology string `json:"technology"`
	Category   string `json:"category"`
}

// DomainTechnologyNames lists baseline technology names per insight domain,
// used when filling solution templates.
var DomainTechnologyNames = map[string][]string{
	"Technology":     {"cloud computing", "AI", "machine learning", "blockchain", "IoT", "AR/VR", "quantum computing"},
	"Healthcare":     {"telehealth", "wearable sensors", "medical imaging", "health informatics", "genomics", "biometrics"},
	"Education":      {"e-learning platforms", "adaptive learning", "educational games", "virtual classrooms", "learning analytics"},
	"Environment":    {"remote sensing", "environmental monitoring", "clean tech", "GIS mapping", "carbon capture"},
	"Business":       {"CRM systems", "ERP solutions", "business intelligence", "process automation", "digital marketing"},
	"Finance":        {"fintech", "payment processing", "blockchain", "algorithmic trading", "risk assessment tools"},
	"Transportation": {"route optimization", "telematics", "autonomous vehicles", "traffic management systems", "mobility platforms"},
	"Energy":         {"smart grid", "energy storage", "renewable technology", "demand response systems", "energy analytics"},
	"Communication":  {"real-time messaging", "video conferencing", "collaborative platforms", "social media analytics", "content management"},
	"Entertainment":  {"content streaming", "interactive media", "gaming engines", "recommendation algorithms", "digital rights management"},
	"Agriculture":    {"precision farming", "crop monitoring", "agricultural drones", "soil sensors", "farm management software"},
	"Manufacturing":  {"robotics", "industrial IoT", "3D printing", "predictive maintenance", "quality control systems"},
	"Retail":         {"inventory management", "point of sale", "customer analytics", "omnichannel platforms", "supply chain optimization"},
	"Urban Planning": {"GIS", "traffic simulation", "infrastructure monitoring", "urban analytics", "smart city platforms"},
	"Sustainability": {"lifecycle assessment", "carbon footprint tracking", "resource management", "sustainability reporting", "circular economy tools"},
}

// CrossDomainTechnologyNames lists technology names useful in any domain.
var CrossDomainTechnologyNames = []string{
	"data analytics", "cloud computing", "mobile applications",
	"API integration", "automation tools", "visualization software",
	"collaborative platforms", "AI/ML models", "digital twins",
}

// DomainConcepts lists baseline innovation concepts per insight domain,
// used when composing cross-domain ideas.
var DomainConcepts = map[string][]string{
	"Technology":     {"algorithmic approach", "digital platform", "automated system", "data-driven solution"},
	"Healthcare":     {"preventive model", "wellness approach", "patient-centered design", "remote monitoring"},
	"Education":      {"learner-centered model", "adaptive curriculum", "competency-based framework", "peer learning"},
	"Environment":    {"circular economy", "zero-waste approach", "ecosystem thinking", "regenerative design"},
	"Business":       {"value chain optimization", "customer journey mapping", "agile organization", "sustainable business model"},
	"Finance":        {"risk distribution", "value exchange", "resource allocation", "portfolio approach"},
	"Transportation": {"mobility as a service", "hub-and-spoke model", "intelligent routing", "demand prediction"},
	"Energy":         {"decentralized production", "demand response", "energy arbitrage", "load balancing"},
	"Communication":  {"network effects", "viral distribution", "peer-to-peer exchange", "information cascade"},
	"Entertainment":  {"user-generated content", "immersive experience", "gamification", "narrative structure"},
	"Agriculture":    {"precision techniques", "crop rotation", "companion planting", "integrated pest management"},
	"Manufacturing":  {"just-in-time production", "modular design", "quality circles", "continuous improvement"},
	"Retail":         {"omnichannel strategy", "experiential retail", "personalized marketing", "inventory optimization"},
	"Urban Planning": {"mixed-use development", "transit-oriented design", "walkable communities", "green infrastructure"},
	"Sustainability": {"cradle-to-cradle design", "resource efficiency", "systems thinking", "impact assessment"},
}

// DomainTechnologies lists baseline categorized technologies per insight
// domain, used for technology suggestions. Not every domain has an entry.
var DomainTechnologies = map[string][]Technology{
	"Technology": {
		{"Machine Learning", "AI & Analytics"},
		{"Big Data Analytics", "AI & Analytics"},
		{"Cloud Computing", "Infrastructure"},
		{"Blockchain", "Security & Trust"},
		{"Internet of Things", "Connected Systems"},
		{"Augmented Reality", "User Experience"},
		{"Natural Language Processing", "AI & Analytics"},
	},
	"Healthcare": {
		{"Telemedicine", "Service Delivery"},
		{"Electronic Health Records", "Data Management"},
		{"Wearable Health Monitors", "Monitoring"},
		{"Medical Imaging AI", "Diagnostics"},
		{"Health Analytics", "AI & Analytics"},
		{"3D Bioprinting", "Manufacturing"},
	},
	"Education": {
		{"Learning Management Systems", "Platforms"},
		{"Adaptive Learning Software", "Personalization"},
		{"Educational Analytics", "AI & Analytics"},
		{"Virtual Classrooms", "Service Delivery"},
		{"Gamified Learning", "User Experience"},
	},
	"Environment": {
		{"Environmental Monitoring", "Monitoring"},
		{"Geographic Information Systems", "Mapping & Analysis"},
		{"Clean Tech", "Sustainability"},
		{"Waste Management Systems", "Sustainability"},
		{"Climate Modeling", "AI & Analytics"},
	},
	"Business": {
		{"CRM Systems", "Customer Management"},
		{"ERP Solutions", "Operations"},
		{"Business Intelligence", "AI & Analytics"},
		{"Process Automation", "Automation"},
		{"Digital Marketing Tools", "Marketing"},
	},
	"Finance": {
		{"Payment Processing", "Transactions"},
		{"Algorithmic Trading", "Investment"},
		{"Blockchain Ledgers", "Security & Trust"},
		{"Fraud Detection", "Security & Trust"},
		{"Financial Analytics", "AI & Analytics"},
	},
	"Transportation": {
		{"Route Optimization", "Logistics"},
		{"Autonomous Vehicles", "Automation"},
		{"Traffic Management Systems", "Infrastructure"},
		{"Fleet Telematics", "Monitoring"},
		{"Mobility Platforms", "Service Delivery"},
	},
	"Energy": {
		{"Smart Grid", "Infrastructure"},
		{"Energy Storage", "Storage"},
		{"Renewable Energy Tech", "Generation"},
		{"Energy Analytics", "AI & Analytics"},
		{"Building Management Systems", "Automation"},
	},
	"Communication": {
		{"Real-time Messaging", "Service Delivery"},
		{"Video Conferencing", "Service Delivery"},
		{"Collaborative Platforms", "Collaboration"},
		{"Content Management", "Data Management"},
		{"Language Translation", "AI & Analytics"},
	},
}

// CrossDomainTechnologies lists categorized technologies applicable across
// all domains.
var CrossDomainTechnologies = []Technology{
	{"Data Visualization", "Presentation"},
	{"API Integration", "Connectivity"},
	{"Mobile Applications", "Service Delivery"},
	{"Cloud Services", "Infrastructure"},
	{"Automation Workflows", "Automation"},
	{"Digital Twin Systems", "Simulation"},
	{"Edge Computing", "Infrastructure"},
	{"Knowledge Graphs", "Data Management"},
	{"Progressive Web Apps", "Service Delivery"},
	{"Low-Code Platforms", "Development"},
}

// ConceptCategories returns the technology categories used when turning a
// domain's concepts into suggestion entries.
func ConceptCategories(domain string) []string {
	switch domain {
	case "Technology":
		return []string{"AI & Analytics", "Infrastructure", "Connected Systems", "Security & Trust"}
	case "Healthcare":
		return []string{"Diagnostics", "Monitoring", "Data Management", "Service Delivery"}
	case "Education":
		return []string{"Platforms", "Personalization", "Content Delivery", "Assessment Tools"}
	case "Business", "Finance":
		return []string{"Operations", "Analytics", "Security", "Automation", "Customer Management"}
	case "Manufacturing":
		return []string{"Automation", "Quality Control", "Supply Chain", "Production"}
	case "Sustainability", "Environment":
		return []string{"Monitoring", "Resource Management", "Sustainability", "Analytics"}
	case "Transportation":
		return []string{"Logistics", "Safety", "Infrastructure", "Automation"}
	default:
		return []string{"Core Technology", "Integration", "Analytics", "Automation"}
	}
}
