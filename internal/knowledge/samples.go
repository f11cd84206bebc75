package knowledge

import (
	"math/rand"
	"regexp"
	"strings"
)

// SampleCategories lists the demo problem categories in a fixed order.
var SampleCategories = []string{
	"Healthcare Data Interoperability",
	"Cybersecurity Threat Detection",
	"Small Business Digital Transformation",
	"Remote Education Access",
	"Sustainable Urban Mobility",
	"Food Supply Chain Waste",
	"Mental Health Support Access",
	"AI Ethics and Governance",
}

// Each template carries {slot} markers filled from sampleOptions, so repeated
// draws in the same category still produce distinct statements.
var sampleTemplates = map[string][]string{
	"Healthcare Data Interoperability": {
		"Design a secure health information exchange that lets {stakeholder_group} share patient records across organizational boundaries. The solution should overcome {primary_challenge} and {secondary_challenge} while keeping patients in control of their own data and meeting strict privacy regulations.",
		"Develop a next-generation health information system for patients with {condition_type} conditions that balances accessibility and privacy. The system should prioritize data security while improving efficiency for clinicians and reducing the administrative burden of record transfers.",
	},
	"Cybersecurity Threat Detection": {
		"Design a next-generation threat detection system that identifies and responds to sophisticated cyber attacks in real time. The solution should protect {system_type} from {attack_vector} attacks, minimize false positives, and provide actionable intelligence to security teams for rapid response.",
		"Create a behavioral-based security monitoring system for {organization_size} organizations that can detect insider threats. The solution should establish baselines of normal activity, flag anomalous behavior using {detection_method}, and reduce alert fatigue while maintaining employee privacy.",
	},
	"Small Business Digital Transformation": {
		"Create a digital transformation framework for {business_type} with {employee_count} employees. The solution should prioritize {primary_focus} and {secondary_focus}, work within tight budgets, and require no dedicated IT staff to adopt or maintain.",
		"Develop an affordable toolkit that helps {business_type} in the {industry_type} industry compete online. The solution should improve {primary_focus} without demanding technical expertise, and show measurable results within {timeframe}.",
	},
	"Remote Education Access": {
		"Design a learning platform for {target_audience} in {location_type} with {connectivity_level} internet access. The solution should work on {device_type}, support offline use, and keep learners engaged without constant teacher supervision.",
		"Develop a system that lets educators deliver interactive lessons to {target_audience} over {connectivity_level} connections. The solution should degrade gracefully when bandwidth drops and give instructors visibility into student progress.",
	},
	"Sustainable Urban Mobility": {
		"Create an intelligent traffic management approach for {city_type} cities with {population_size} populations. The solution should combine data from {data_source_type} to reduce congestion, cut emissions, and provide clear, actionable information to city planners and commuters.",
		"Design a mobility program for {location_type} focused on {focus_area}. The solution should integrate with existing public transportation, account for residents without smartphones, and demonstrate impact within {timeframe}.",
	},
	"Food Supply Chain Waste": {
		"Develop a system that reduces food waste at the {supply_chain_stage} stage of the supply chain by connecting {stakeholder1} with {stakeholder2}. The solution should handle perishability windows, build trust between parties, and quantify the waste avoided.",
		"Create a platform that helps {stakeholder1} redirect surplus food before it spoils. The solution should coordinate logistics with {stakeholder2}, comply with food safety rules, and work for organizations with minimal technical capacity.",
	},
	"Mental Health Support Access": {
		"Design a support service that improves mental health care access for {target_population}. The solution should address {primary_barrier} and {secondary_barrier} as obstacles to care, protect user privacy, and connect people to licensed professionals when self-guided tools are not enough.",
		"Develop a {approach_type} program that helps {target_population} find and sustain mental health support. The solution should lower the cost of first contact, respect cultural context, and measure outcomes without stigmatizing its users.",
	},
	"AI Ethics and Governance": {
		"Design a framework for ensuring ethical AI decision-making in {application_domain}. The solution should address bias, transparency, accountability, and privacy, and include mechanisms for ongoing monitoring to prevent {primary_concern}.",
		"Develop a practical approach to AI governance for {organization_type}. The solution should balance innovation with responsibility, give non-technical stakeholders tools to identify ethical risks, and include metrics to evaluate compliance.",
	},
}

var sampleOptions = map[string][]string{
	"stakeholder_group":   {"rural hospitals", "specialty clinics", "patients with chronic conditions", "emergency responders", "medical researchers"},
	"condition_type":      {"chronic", "rare", "infectious", "pediatric", "geriatric"},
	"primary_challenge":   {"data fragmentation", "legacy systems", "information security", "resource limitations", "regulatory compliance"},
	"secondary_challenge": {"user adoption", "interoperability", "scalability", "cost constraints", "privacy concerns"},
	"system_type":         {"critical infrastructure", "financial platforms", "healthcare networks", "government services", "industrial control systems"},
	"attack_vector":       {"ransomware", "phishing", "supply chain", "credential stuffing", "denial of service"},
	"organization_size":   {"small", "mid-size", "large", "distributed"},
	"detection_method":    {"anomaly scoring", "peer-group comparison", "sequence analysis", "risk-weighted alerting"},
	"business_type":       {"retail shops", "restaurants", "service providers", "manufacturing businesses", "professional practices"},
	"employee_count":      {"1-5", "5-10", "10-25", "under 50", "family-run"},
	"primary_focus":       {"customer acquisition", "operational efficiency", "payment processing", "inventory management", "remote work capabilities"},
	"secondary_focus":     {"brand awareness", "customer retention", "supply chain optimization", "financial management", "market analysis"},
	"industry_type":       {"food service", "retail", "professional services", "manufacturing", "tourism", "construction"},
	"target_audience":     {"K-12 students", "university students", "adult learners", "vocational trainees", "underserved communities"},
	"location_type":       {"urban centers", "suburban communities", "rural areas", "developing regions", "coastal cities", "agricultural communities"},
	"connectivity_level":  {"intermittent", "low-bandwidth", "limited", "unreliable", "satellite-dependent"},
	"device_type":         {"basic smartphones", "tablets", "older computers", "low-cost devices", "shared computing resources"},
	"city_type":           {"rapidly growing", "historically congested", "tourist-heavy", "economically diverse", "geographically constrained"},
	"population_size":     {"small (under 100,000)", "medium (100,000-500,000)", "large (500,000-1 million)", "metropolitan (over 1 million)"},
	"data_source_type":    {"connected vehicles", "mobile devices", "traffic cameras", "environmental sensors", "public transit systems"},
	"focus_area":          {"renewable energy adoption", "sustainable transportation", "waste reduction", "resource efficiency", "community engagement"},
	"supply_chain_stage":  {"production", "processing", "distribution", "retail", "consumption"},
	"stakeholder1":        {"farmers", "food processors", "distributors", "retailers", "restaurants", "food banks"},
	"stakeholder2":        {"grocers", "food service businesses", "institutional buyers", "community organizations", "waste management companies"},
	"target_population":   {"adolescents", "elderly individuals", "low-income communities", "rural populations", "veterans", "minority groups"},
	"primary_barrier":     {"stigma", "cost", "geographical access", "awareness", "cultural factors", "service availability"},
	"secondary_barrier":   {"transportation", "digital literacy", "language barriers", "continuity of care", "family support"},
	"approach_type":       {"technological", "behavioral", "policy-based", "educational", "community-driven", "incentive-based"},
	"application_domain":  {"healthcare", "finance", "criminal justice", "hiring and employment", "education", "autonomous systems"},
	"primary_concern":     {"algorithmic bias", "privacy violations", "lack of explainability", "safety issues", "data misuse"},
	"organization_type":   {"technology startups", "enterprise corporations", "government agencies", "educational institutions", "research labs", "nonprofit organizations"},
	"timeframe":           {"6 months", "1 year", "18 months", "2 years"},
}

var sampleSlotPattern = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// SampleProblem generates a demo problem statement for the category. Unknown
// categories fall back to the first category. Slots are filled in the order
// they appear in the template, so a fixed seed is reproducible.
func SampleProblem(rng *rand.Rand, category string) string {
	templates, ok := sampleTemplates[category]
	if !ok {
		templates = sampleTemplates[SampleCategories[0]]
	}
	text := templates[rng.Intn(len(templates))]
	for _, match := range sampleSlotPattern.FindAllStringSubmatch(text, -1) {
		options := sampleOptions[match[1]]
		if len(options) == 0 {
			continue
		}
		text = strings.Replace(text, match[0], options[rng.Intn(len(options))], 1)
	}
	return text
}
