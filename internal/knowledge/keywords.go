package knowledge

// KeywordTable maps category names to keyword lists. Categories holds the
// key order so "first category" tie-breaks stay deterministic; Go map
// iteration order would not.
type KeywordTable struct {
	Categories []string
	Keywords   map[string][]string
}

// Contains reports whether the table knows the category.
func (t KeywordTable) Contains(category string) bool {
	_, ok := t.Keywords[category]
	return ok
}

// InsightDomains lists the high-level domains used for relevance scoring.
var InsightDomains = []string{
	"Technology", "Healthcare", "Education", "Environment",
	"Business", "Finance", "Transportation", "Energy",
	"Communication", "Entertainment", "Agriculture",
	"Manufacturing", "Retail", "Urban Planning", "Sustainability",
}

// DomainMapping links insight domains to the tech-domain table keys.
var DomainMapping = map[string]string{
	"Technology":     "artificial_intelligence",
	"Healthcare":     "healthcare",
	"Education":      "education",
	"Environment":    "sustainability",
	"Business":       "software_development",
	"Finance":        "finance",
	"Transportation": "transportation",
	"Manufacturing":  "manufacturing",
	"Sustainability": "sustainability",
}

// InsightDomainKeywords drives relevance scoring of problem text against the
// insight domains.
var InsightDomainKeywords = KeywordTable{
	Categories: InsightDomains,
	Keywords: map[string][]string{
		"Technology":     {"digital", "tech", "software", "hardware", "app", "online", "internet", "algorithm", "data", "computer", "AI", "artificial intelligence", "machine learning"},
		"Healthcare":     {"health", "medical", "patient", "doctor", "hospital", "wellness", "disease", "treatment", "care", "clinical", "diagnosis"},
		"Education":      {"education", "learning", "student", "teach", "school", "university", "training", "curriculum", "classroom", "knowledge", "skill"},
		"Environment":    {"environment", "sustainability", "climate", "green", "eco", "pollution", "conservation", "waste", "recycling", "natural", "energy"},
		"Business":       {"business", "company", "organization", "market", "customer", "product", "service", "strategy", "management", "operation"},
		"Finance":        {"finance", "money", "budget", "cost", "investment", "fund", "economic", "profit", "revenue", "expense", "financial"},
		"Transportation": {"transport", "vehicle", "car", "bus", "train", "traffic", "commute", "travel", "mobility", "logistics"},
		"Energy":         {"energy", "power", "electricity", "fuel", "renewable", "solar", "wind", "grid", "consumption", "efficiency"},
		"Communication":  {"communication", "message", "media", "information", "network", "social", "community", "connect", "interaction"},
		"Entertainment":  {"entertainment", "media", "game", "video", "music", "film", "art", "leisure", "play", "creative"},
		"Agriculture":    {"agriculture", "farm", "crop", "food", "harvest", "soil", "plant", "livestock", "organic", "cultivation"},
		"Manufacturing":  {"manufacturing", "production", "factory", "industry", "assembly", "quality", "product", "process", "automation"},
		"Retail":         {"retail", "store", "shop", "consumer", "customer", "product", "sale", "purchase", "e-commerce", "market"},
		"Urban Planning": {"urban", "city", "planning", "infrastructure", "building", "community", "development", "public", "space", "design"},
		"Sustainability": {"sustainable", "renewable", "eco-friendly", "green", "environmental", "conservation", "resource", "efficiency", "circular"},
	},
}

// TipDomainKeywords maps hackathon tip domains to trigger keywords.
var TipDomainKeywords = KeywordTable{
	Categories: []string{
		"health", "education", "environment", "finance", "transportation",
		"social_impact", "artificial_intelligence", "blockchain", "gaming",
		"iot", "ar_vr", "data_science",
	},
	Keywords: map[string][]string{
		"health":                  {"healthcare", "medical", "health", "patient", "doctor", "hospital", "wellness", "diagnosis"},
		"education":               {"education", "learning", "student", "school", "teacher", "classroom", "academic", "curriculum"},
		"environment":             {"environment", "climate", "sustainability", "green", "eco", "pollution", "conservation", "renewable"},
		"finance":                 {"finance", "banking", "payment", "money", "budget", "investment", "financial", "transaction"},
		"transportation":          {"transportation", "vehicle", "traffic", "commute", "mobility", "transit", "transport", "travel"},
		"social_impact":           {"social", "community", "impact", "nonprofit", "equality", "inclusive", "accessibility", "underserved"},
		"artificial_intelligence": {"ai", "machine learning", "deep learning", "neural", "algorithm", "intelligence", "prediction", "automation"},
		"blockchain":              {"blockchain", "crypto", "nft", "token", "decentralized", "distributed", "ledger", "web3"},
		"gaming":                  {"game", "gaming", "player", "interactive", "play", "entertainment", "engagement", "immersive"},
		"iot":                     {"iot", "sensor", "smart device", "connected", "internet of things", "embedded", "monitoring", "automation"},
		"ar_vr":                   {"ar", "vr", "augmented", "virtual", "reality", "immersive", "3d", "spatial"},
		"data_science":            {"data", "analytics", "statistics", "visualization", "insight", "prediction", "analysis", "dashboard"},
	},
}

// ApproachKeywords maps technical approaches to trigger keywords.
var ApproachKeywords = KeywordTable{
	Categories: []string{
		"mobile", "web", "api", "database", "machine_learning",
		"visualization", "hardware", "cloud",
	},
	Keywords: map[string][]string{
		"mobile":           {"mobile", "app", "smartphone", "ios", "android", "tablet", "responsive", "touch"},
		"web":              {"web", "website", "browser", "frontend", "backend", "html", "javascript", "responsive"},
		"api":              {"api", "integration", "endpoint", "service", "microservice", "interface", "request", "response"},
		"database":         {"database", "storage", "query", "data management", "sql", "nosql", "record", "persistence"},
		"machine_learning": {"model", "train", "predict", "classify", "regression", "feature", "dataset", "algorithm"},
		"visualization":    {"visualization", "chart", "dashboard", "graph", "display", "map", "plot", "infographic"},
		"hardware":         {"hardware", "device", "physical", "sensor", "bluetooth", "electronic", "prototype", "component"},
		"cloud":            {"cloud", "aws", "azure", "google cloud", "serverless", "saas", "paas", "hosted"},
	},
}

// TargetUserKeywords maps target-user categories to trigger keywords.
var TargetUserKeywords = KeywordTable{
	Categories: []string{
		"consumers", "businesses", "government", "healthcare_providers",
		"educators", "researchers",
	},
	Keywords: map[string][]string{
		"consumers":            {"consumer", "user", "customer", "client", "public", "individual", "person", "people"},
		"businesses":           {"business", "company", "organization", "enterprise", "corporate", "industry", "firm", "commercial"},
		"government":           {"government", "public sector", "policy", "regulation", "compliance", "agency", "official", "civic"},
		"healthcare_providers": {"hospital", "clinic", "doctor", "nurse", "physician", "caregiver", "medical staff", "provider"},
		"educators":            {"teacher", "professor", "instructor", "educator", "faculty", "school", "university", "academic"},
		"researchers":          {"researcher", "scientist", "academic", "study", "investigation", "laboratory", "publication", "finding"},
	},
}

// DomainTrends is the baseline per-domain trend bank, before tech-domain and
// emerging-technology enrichment.
var DomainTrends = map[string][]string{
	"Technology": {
		"Increasing adoption of AI and machine learning for automation",
		"Growing focus on user experience and interface design",
		"Rising importance of cybersecurity and data privacy",
		"Shift towards cloud-based and distributed computing",
		"Integration of IoT devices in everyday products and services",
	},
	"Healthcare": {
		"Growing focus on preventive healthcare and wellness",
		"Increasing use of telemedicine and remote monitoring",
		"Rise of personalized medicine and treatment plans",
		"Integration of AI in diagnostics and treatment recommendations",
		"Greater emphasis on mental health and holistic well-being",
	},
	"Education": {
		"Shift towards personalized and adaptive learning approaches",
		"Integration of technology in classroom and remote education",
		"Growing emphasis on lifelong learning and skill development",
		"Rise of microlearning and bite-sized educational content",
		"Focus on developing critical thinking and problem-solving skills",
	},
	"Environment": {
		"Increasing focus on circular economy and waste reduction",
		"Growing adoption of renewable energy sources",
		"Rising consumer demand for sustainable products",
		"Development of innovative techniques for carbon capture",
		"Implementation of stricter environmental regulations",
	},
	"Business": {
		"Shift towards remote and flexible work arrangements",
		"Growing importance of digital transformation",
		"Rise of subscription-based business models",
		"Increasing focus on customer experience and personalization",
		"Growing emphasis on corporate social responsibility",
	},
	"Finance": {
		"Rise of digital and mobile payment systems",
		"Growing adoption of blockchain and cryptocurrency",
		"Increasing focus on financial inclusion",
		"Development of AI-driven financial advice and services",
		"Shift towards sustainable and ethical investing",
	},
	"Transportation": {
		"Growing development of autonomous vehicles",
		"Shift towards electric and alternative fuel vehicles",
		"Rise of shared mobility services",
		"Integration of smart technology in transportation infrastructure",
		"Focus on last-mile delivery solutions",
	},
	"Energy": {
		"Increasing investment in renewable energy sources",
		"Development of more efficient energy storage solutions",
		"Growth of smart grid technology and infrastructure",
		"Focus on decentralized energy production",
		"Rising adoption of energy-efficient technologies",
	},
	"Communication": {
		"Growing importance of visual communication",
		"Rise of real-time and asynchronous collaboration tools",
		"Increasing personalization of communication channels",
		"Development of more immersive communication technologies",
		"Focus on inclusive and accessible communication",
	},
	"Entertainment": {
		"Shift towards streaming and on-demand content",
		"Growing integration of AR and VR in entertainment",
		"Rise of interactive and participatory entertainment",
		"Increasing personalization of content recommendations",
		"Development of more immersive gaming experiences",
	},
	"Agriculture": {
		"Adoption of precision agriculture techniques",
		"Integration of IoT and sensors in farming",
		"Growing focus on sustainable and regenerative practices",
		"Development of vertical and urban farming solutions",
		"Rise of alternative protein sources and lab-grown foods",
	},
	"Manufacturing": {
		"Increasing automation and use of robotics",
		"Adoption of additive manufacturing (3D printing)",
		"Growing implementation of Industry 4.0 principles",
		"Focus on sustainable and circular manufacturing",
		"Rise of customization and on-demand production",
	},
	"Retail": {
		"Growing integration of online and offline shopping experiences",
		"Rise of experiential retail and immersive shopping",
		"Increasing use of AI for personalized recommendations",
		"Development of faster and more efficient delivery methods",
		"Focus on sustainability and ethical sourcing",
	},
	"Urban Planning": {
		"Growing development of smart city infrastructure",
		"Increasing focus on walkability and public spaces",
		"Rise of mixed-use developments and urban villages",
		"Integration of green spaces and natural elements",
		"Focus on resilience and adaptation to climate change",
	},
	"Sustainability": {
		"Growing implementation of circular economy principles",
		"Rise of sustainable and ethical consumption",
		"Increasing focus on biodiversity and ecosystem preservation",
		"Development of innovative materials and processes",
		"Shift towards measuring and reducing carbon footprints",
	},
}
