package knowledge

// Tip is a single piece of hackathon advice with a 1-10 importance weight.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Importance  int    `json:"importance"`
	Detail      string `json:"detail"`
}

// SpecialTip is context-selected advice without an importance weight.
type SpecialTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

// Pitfall is a common failure mode with its avoidance strategy.
type Pitfall struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	AvoidanceStrategy string `json:"avoidance_strategy"`
	Impact            string `json:"impact"`
	Detail            string `json:"detail"`
}

// CategoryInfo describes a hackathon category and strategies specific to it.
type CategoryInfo struct {
	Description   string   `json:"description"`
	KeyStrategies []string `json:"key_strategies"`
}

// SuccessStory is a hackathon project that became a real product.
type SuccessStory struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Outcome     string   `json:"outcome"`
	KeyLessons  []string `json:"key_lessons"`
	Detail      string   `json:"detail"`
}

// PlanningTips holds preparation advice keyed by phase: pre_event and
// day_of_event.
var PlanningTips = map[string][]Tip{
	"pre_event": {
		{
			Title:       "Team Formation",
			Description: "Build a balanced team with diverse skills. Include developers, designers, and domain experts.",
			Importance:  9,
			Detail:      "Look for complementary skills and personalities that work well together. Having a full-stack team with both technical and presentation skills is crucial for success.",
		},
		{
			Title:       "Research the Theme",
			Description: "Research the hackathon's theme, judging criteria, and past winning projects.",
			Importance:  8,
			Detail:      "Understanding what the judges are looking for gives you a significant advantage. Study previous winners to identify patterns in successful submissions.",
		},
		{
			Title:       "Prepare Your Tech Stack",
			Description: "Set up development environments, starter templates, and CI/CD pipelines beforehand.",
			Importance:  7,
			Detail:      "Prepare Docker containers, GitHub repositories, and development environments ahead of time to minimize setup issues during the event.",
		},
		{
			Title:       "Brainstorm Ideas",
			Description: "Generate multiple project ideas that align with the theme before the event.",
			Importance:  8,
			Detail:      "Have 3-5 potential concepts ready to discuss with your team. This gives you flexibility if your first choice proves too difficult or common.",
		},
		{
			Title:       "Pack Essentials",
			Description: "Prepare your hackathon survival kit with chargers, extensions, snacks, etc.",
			Importance:  6,
			Detail:      "Include power banks, necessary adapters, comfortable headphones, water bottle, energy snacks, and basic medicine.",
		},
	},
	"day_of_event": {
		{
			Title:       "Quick Ideation",
			Description: "Spend no more than 2 hours on final idea selection and planning.",
			Importance:  9,
			Detail:      "Use techniques like timeboxed brainstorming, dot voting, and rapid prototyping to quickly validate your concept.",
		},
		{
			Title:       "Define MVP",
			Description: "Clearly define what features are essential for your minimum viable product.",
			Importance:  10,
			Detail:      "Focus on core functionality that demonstrates your concept. Ruthlessly cut nice-to-have features that might jeopardize completion.",
		},
		{
			Title:       "Task Allocation",
			Description: "Assign clear responsibilities based on team members' strengths.",
			Importance:  8,
			Detail:      "Create a simple Kanban board with 'To Do', 'In Progress', and 'Done' columns to track tasks and prevent duplication of effort.",
		},
		{
			Title:       "Regular Check-ins",
			Description: "Schedule brief team check-ins every 3-4 hours to address blockers.",
			Importance:  7,
			Detail:      "Use stand-up meeting format: what you've done, what you're doing next, and any blockers you're facing.",
		},
		{
			Title:       "Start Presentation Early",
			Description: "Begin working on your presentation structure after defining your MVP.",
			Importance:  8,
			Detail:      "Assign someone to work on slides and demo script while development is ongoing. This ensures your presentation is polished and compelling.",
		},
	},
}

// TechnicalStrategies holds execution advice keyed by category: development
// and design.
var TechnicalStrategies = map[string][]Tip{
	"development": {
		{
			Title:       "Use Familiar Technologies",
			Description: "Stick to technologies your team already knows well.",
			Importance:  9,
			Detail:      "Hackathons are not the time to learn new frameworks or languages. Using familiar tools increases your speed and reduces debugging time.",
		},
		{
			Title:       "Leverage Libraries and APIs",
			Description: "Use existing libraries, APIs, and services rather than building from scratch.",
			Importance:  8,
			Detail:      "Take advantage of tools like Firebase for backend, UI component libraries, or AI services like OpenAI's API to accelerate development.",
		},
		{
			Title:       "Implement Feature Flags",
			Description: "Build with feature toggles to easily disable problematic features.",
			Importance:  7,
			Detail:      "Feature flags allow you to turn off buggy components at the last minute without affecting the rest of your application.",
		},
		{
			Title:       "Focus on Core Functionality",
			Description: "Prioritize the unique value proposition of your solution over bells and whistles.",
			Importance:  9,
			Detail:      "Make sure the key innovation works flawlessly before adding secondary features. A simple, working demo beats a complex, buggy one.",
		},
		{
			Title:       "Create Fallbacks",
			Description: "Have backup plans for risky or complex features.",
			Importance:  8,
			Detail:      "If a key component relies on an external API, prepare mock data or simplified alternatives in case of integration issues.",
		},
	},
	"design": {
		{
			Title:       "Use Design Templates",
			Description: "Leverage design systems, templates, and component libraries.",
			Importance:  7,
			Detail:      "Platforms like Figma, Material UI, or Bootstrap provide ready-to-use components that ensure visual consistency and save time.",
		},
		{
			Title:       "Focus on User Experience",
			Description: "Prioritize intuitive user flows over comprehensive feature sets.",
			Importance:  8,
			Detail:      "A streamlined experience with fewer features is more impressive than a complex interface that's difficult to navigate.",
		},
		{
			Title:       "Create Compelling Visuals",
			Description: "Develop clear data visualizations and infographics that highlight your solution's impact.",
			Importance:  7,
			Detail:      "Charts, graphs, and well-designed infographics can communicate complex ideas quickly and make your solution more memorable.",
		},
		{
			Title:       "Mobile-First Approach",
			Description: "Ensure your solution works well on mobile devices, even for web applications.",
			Importance:  6,
			Detail:      "Judges often view projects on their phones or tablets during initial screening. A responsive design creates a positive first impression.",
		},
		{
			Title:       "Accessibility Considerations",
			Description: "Implement basic accessibility features to demonstrate inclusivity.",
			Importance:  6,
			Detail:      "Proper color contrast, keyboard navigation, and appropriate text sizes not only make your app more inclusive but also demonstrate attention to detail.",
		},
	},
}

// PresentationStrategies holds pitch, demo, and Q&A advice.
var PresentationStrategies = map[string][]Tip{
	"pitch": {
		{
			Title:       "Start with the Problem",
			Description: "Begin your presentation by clearly articulating the problem you're solving.",
			Importance:  9,
			Detail:      "Describe who experiences the problem, why it matters, and what current solutions are lacking. This helps judges understand your project's relevance.",
		},
		{
			Title:       "Tell a Story",
			Description: "Frame your solution as a narrative with a clear beginning, middle, and end.",
			Importance:  8,
			Detail:      "Stories are more engaging and memorable than feature lists. Use a specific user persona or scenario to illustrate your solution's impact.",
		},
		{
			Title:       "Highlight Unique Value",
			Description: "Clearly articulate what makes your solution innovative or different.",
			Importance:  9,
			Detail:      "Explicitly state your unique selling proposition and how it addresses the problem better than existing solutions.",
		},
		{
			Title:       "Include Market Potential",
			Description: "Briefly discuss the market size and potential impact of your solution.",
			Importance:  7,
			Detail:      "Judges want to see that your solution has relevance beyond the hackathon. Mention target users, potential scale, and real-world applications.",
		},
		{
			Title:       "Practice Timing",
			Description: "Rehearse your pitch to fit within the time limit with a buffer for unexpected issues.",
			Importance:  8,
			Detail:      "Time each section of your presentation and practice transitions between speakers. Aim to finish 30 seconds under the limit.",
		},
	},
	"demo": {
		{
			Title:       "Prepare a Fallback Demo",
			Description: "Have screenshots or a video backup in case of technical issues.",
			Importance:  9,
			Detail:      "Technical problems during demos are common. A pre-recorded video or series of screenshots ensures you can still showcase your work.",
		},
		{
			Title:       "Focus on User Flow",
			Description: "Demonstrate a complete user journey rather than individual features.",
			Importance:  8,
			Detail:      "Show how a user would naturally interact with your application from start to finish. This helps judges understand the full experience.",
		},
		{
			Title:       "Highlight Technical Challenges",
			Description: "Briefly mention significant technical challenges you overcame.",
			Importance:  7,
			Detail:      "Judges appreciate understanding the complexity behind your solution. Mention specific algorithms, integrations, or performance optimizations.",
		},
		{
			Title:       "Use Realistic Data",
			Description: "Populate your demo with realistic, relatable data rather than placeholder text.",
			Importance:  6,
			Detail:      "Realistic data helps judges visualize the real-world application. Avoid lorem ipsum and generic usernames like 'test123'.",
		},
		{
			Title:       "Prepare for Different Screen Sizes",
			Description: "Test your demo on the presentation equipment beforehand if possible.",
			Importance:  6,
			Detail:      "Font sizes, colors, and layout might look different on projectors or external displays. Check resolution settings and browser zoom levels.",
		},
	},
	"q_and_a": {
		{
			Title:       "Anticipate Questions",
			Description: "Prepare for common questions about scalability, monetization, and technical decisions.",
			Importance:  8,
			Detail:      "Create a list of potential questions and practice concise answers. Cover technical architecture, business model, and future development plans.",
		},
		{
			Title:       "Acknowledge Limitations",
			Description: "Be honest about current limitations while emphasizing future plans.",
			Importance:  7,
			Detail:      "Judges appreciate candor. Mention what you would implement with more time and how you would address current constraints.",
		},
		{
			Title:       "Distribute Question Answering",
			Description: "Plan which team member will answer questions in specific domains.",
			Importance:  6,
			Detail:      "Technical questions should be answered by developers, design questions by designers, etc. This demonstrates team cohesion and individual expertise.",
		},
		{
			Title:       "Keep Answers Concise",
			Description: "Provide direct, clear answers without unnecessary details.",
			Importance:  7,
			Detail:      "Aim for 30-second answers that address the core question. Offer to elaborate if the judge wants more information.",
		},
		{
			Title:       "End with Enthusiasm",
			Description: "Conclude by reiterating your excitement about the project and its potential.",
			Importance:  7,
			Detail:      "Enthusiasm is contagious. Express your team's passion for the solution and willingness to develop it further beyond the hackathon.",
		},
	},
}

// JudgeInsights lists what judges typically look for in submissions.
var JudgeInsights = []Tip{
	{
		Title:       "Innovation and Originality",
		Description: "Judges value unique approaches and creative solutions over polished implementations of common ideas.",
		Importance:  9,
		Detail:      "Demonstrate how your solution approaches the problem from a new angle or combines existing technologies in novel ways.",
	},
	{
		Title:       "Problem-Solution Fit",
		Description: "Your solution should directly address the stated problem or theme of the hackathon.",
		Importance:  9,
		Detail:      "Clearly articulate how each feature of your solution maps to specific aspects of the problem you're solving.",
	},
	{
		Title:       "Technical Implementation",
		Description: "Judges assess the technical complexity and quality of your implementation.",
		Importance:  8,
		Detail:      "Clean code, thoughtful architecture, and appropriate technology choices all contribute to judges' evaluation of technical merit.",
	},
	{
		Title:       "Completeness and Polish",
		Description: "A working prototype with limited features is better than a partial implementation of many features.",
		Importance:  8,
		Detail:      "Focus on delivering a complete experience for core functionality rather than a fragmented implementation of multiple features.",
	},
	{
		Title:       "Business Potential",
		Description: "Many judges look for solutions that could become viable products or services.",
		Importance:  7,
		Detail:      "Consider addressing market size, potential revenue streams, and competitive advantages even if not explicitly required.",
	},
	{
		Title:       "Presentation Quality",
		Description: "Clear, concise, and engaging presentations significantly impact judges' perception.",
		Importance:  8,
		Detail:      "Professional slides, confident delivery, and a compelling narrative can elevate even technically simple projects.",
	},
	{
		Title:       "Team Dynamics",
		Description: "Judges observe how teams collaborate and distribute responsibilities.",
		Importance:  6,
		Detail:      "Balanced participation during presentations and Q&A sessions demonstrates effective teamwork and shared ownership.",
	},
	{
		Title:       "Learning and Growth",
		Description: "Judges appreciate teams that demonstrate learning and adaptation during the hackathon.",
		Importance:  7,
		Detail:      "Acknowledging challenges, explaining how you overcame them, and highlighting new skills acquired shows resilience and growth mindset.",
	},
}

// HackathonCategories describes hackathon types and strategies for each.
var HackathonCategories = map[string]CategoryInfo{
	"general": {
		Description: "Standard hackathons without a specific industry focus",
		KeyStrategies: []string{
			"Focus on universal problems with broad appeal",
			"Balance technical innovation with practical utility",
			"Emphasize user experience and intuitive design",
		},
	},
	"ai_ml": {
		Description: "Hackathons focused on artificial intelligence and machine learning",
		KeyStrategies: []string{
			"Choose problems where AI/ML provides significant advantage over traditional approaches",
			"Prepare datasets and training pipelines beforehand",
			"Emphasize model accuracy, novel approaches to feature engineering, and ethical considerations",
			"Be ready to explain your model architecture and training methodology",
			"Consider hybrid approaches combining rule-based systems with machine learning",
		},
	},
	"blockchain": {
		Description: "Hackathons centered on blockchain and Web3 technologies",
		KeyStrategies: []string{
			"Focus on genuine use cases where decentralization adds value",
			"Prepare smart contract templates and testing environments in advance",
			"Address common concerns about scalability, energy consumption, and user experience",
			"Consider layer-2 solutions or sidechains for better performance",
			"Emphasize security considerations and audit approaches",
		},
	},
	"health_tech": {
		Description: "Hackathons addressing healthcare and medical technology challenges",
		KeyStrategies: []string{
			"Research regulatory considerations (HIPAA, GDPR, etc.) relevant to your solution",
			"Focus on patient outcomes and practitioner workflows",
			"Address privacy and security considerations explicitly",
			"Incorporate subject matter experts or research in your approach",
			"Consider interoperability with existing healthcare systems",
		},
	},
	"social_impact": {
		Description: "Hackathons focused on social good and community challenges",
		KeyStrategies: []string{
			"Quantify the impact of your solution with specific metrics",
			"Consider accessibility and inclusivity for underserved populations",
			"Address sustainability and long-term viability",
			"Incorporate community feedback and participatory design principles",
			"Balance idealism with practical implementation concerns",
		},
	},
	"fintech": {
		Description: "Hackathons addressing financial technology challenges",
		KeyStrategies: []string{
			"Address security and compliance considerations explicitly",
			"Focus on reducing friction in financial processes",
			"Consider financial inclusion and accessibility",
			"Prepare for questions about monetization and business models",
			"Highlight data privacy approaches and transparent algorithms",
		},
	},
	"hardware": {
		Description: "Hackathons involving hardware, IoT, or physical products",
		KeyStrategies: []string{
			"Bring backup components and testing equipment",
			"Prepare contingency plans for hardware failures",
			"Document your build process with photos and videos",
			"Focus on proof-of-concept rather than refined prototypes",
			"Consider software simulations as backups for hardware demos",
		},
	},
	"game_dev": {
		Description: "Hackathons focused on game development",
		KeyStrategies: []string{
			"Prioritize core gameplay mechanics over graphics and polish",
			"Develop a vertical slice showing the most engaging elements",
			"Test controls and user experience with people outside your team",
			"Prepare builds for different platforms if required",
			"Consider accessibility features like colorblind modes or customizable controls",
		},
	},
}

// PitfallAvoidance lists common hackathon mistakes and how to avoid them.
var PitfallAvoidance = []Pitfall{
	{
		Title:             "Scope Creep",
		Description:       "Adding too many features as the hackathon progresses.",
		AvoidanceStrategy: "Write down your MVP features at the start and require team consensus to add anything new.",
		Impact:            "High",
		Detail:            "Scope creep is the #1 reason projects fail to complete. Be ruthless about cutting non-essential features as time progresses.",
	},
	{
		Title:             "Technical Rabbit Holes",
		Description:       "Spending too much time solving complex technical problems.",
		AvoidanceStrategy: "Set time limits for resolving issues before seeking workarounds or simplifications.",
		Impact:            "High",
		Detail:            "Set a 30-minute timer when tackling difficult problems. If not resolved, find alternative approaches or simplify requirements.",
	},
	{
		Title:             "Neglecting Presentation",
		Description:       "Focusing exclusively on development until the last moment.",
		AvoidanceStrategy: "Allocate dedicated time for presentation preparation at least 3 hours before submission.",
		Impact:            "High",
		Detail:            "Even brilliant solutions fail without effective communication. Assign a team member to work on slides and script while development continues.",
	},
	{
		Title:             "Poor Version Control",
		Description:       "Inadequate code management leading to conflicts and lost work.",
		AvoidanceStrategy: "Use feature branches and establish merge protocols from the beginning.",
		Impact:            "Medium",
		Detail:            "Set up a Git repository with clear branching strategy. Commit frequently and communicate before merging changes to avoid conflicts.",
	},
	{
		Title:             "Ignoring Judging Criteria",
		Description:       "Building a solution that doesn't align with evaluation metrics.",
		AvoidanceStrategy: "Create a checklist based on judging criteria and review progress against it regularly.",
		Impact:            "High",
		Detail:            "Refer to the judging criteria when making decisions about features and presentation focus. Ensure you're optimizing for the actual evaluation metrics.",
	},
	{
		Title:             "Siloed Work",
		Description:       "Team members working independently without coordination.",
		AvoidanceStrategy: "Schedule regular sync-ups and use collaborative tools for real-time awareness.",
		Impact:            "Medium",
		Detail:            "Use project management tools like Trello or GitHub Projects to track tasks. Hold brief stand-ups every 3-4 hours to ensure alignment.",
	},
	{
		Title:             "Over-engineering",
		Description:       "Implementing complex architectures unnecessary for the proof of concept.",
		AvoidanceStrategy: "Focus on demonstrating core value with the simplest viable implementation.",
		Impact:            "Medium",
		Detail:            "Remember that hackathons reward working prototypes, not perfectly scalable architecture. Prioritize shipping a functional demo over technical elegance.",
	},
	{
		Title:             "Neglecting Self-care",
		Description:       "Skipping meals, sleep, and breaks leading to decreased productivity.",
		AvoidanceStrategy: "Schedule regular breaks, ensure adequate sleep, and maintain proper nutrition.",
		Impact:            "Medium",
		Detail:            "Plan for 6-hour sleep blocks, regular meal times, and 5-minute breaks every hour. Well-rested teams outperform exhausted ones in the final stretch.",
	},
	{
		Title:             "Unclear Communication",
		Description:       "Misunderstandings about features, responsibilities, or technical decisions.",
		AvoidanceStrategy: "Document key decisions and maintain a shared understanding of priorities.",
		Impact:            "Medium",
		Detail:            "Keep a running document of architectural decisions, feature priorities, and team member responsibilities. Review this document during team check-ins.",
	},
	{
		Title:             "Last-minute Deployment Issues",
		Description:       "Struggling with environment differences when preparing the final submission.",
		AvoidanceStrategy: "Test deployment processes early and maintain consistent development environments.",
		Impact:            "High",
		Detail:            "Set up deployment pipelines on day one. Consider container technologies like Docker to ensure consistency across environments.",
	},
}

// SuccessStories lists hackathon projects that became real products.
var SuccessStories = []SuccessStory{
	{
		Name:        "GroupMe",
		Description: "A group messaging app developed at the TechCrunch Disrupt Hackathon in 2010.",
		Outcome:     "Acquired by Skype for $85 million just over a year after the hackathon.",
		KeyLessons: []string{
			"Focused on solving a simple but universal problem (group communication)",
			"Prioritized user experience over feature complexity",
			"Leveraged existing technologies (SMS) rather than building everything from scratch",
		},
		Detail: "The founders identified a gap in the market for simple group messaging that worked across different platforms. They built a minimum viable product in 24 hours that allowed users to create groups and message via SMS, web, or app.",
	},
	{
		Name:        "EasyTaxi",
		Description: "A taxi hailing app developed at Startup Weekend Rio in 2011.",
		Outcome:     "Expanded to over 30 countries and raised more than $75 million in funding.",
		KeyLessons: []string{
			"Adapted a proven model (Uber) to a specific regional context (Latin America)",
			"Focused on solving local transportation inefficiencies",
			"Built relationships with traditional taxi services rather than disrupting them",
		},
		Detail: "The team recognized that while ride-sharing was growing globally, many regions still relied heavily on traditional taxis. They created a solution that bridged this gap, helping conventional taxi drivers compete in the digital economy.",
	},
	{
		Name:        "Carousell",
		Description: "A mobile marketplace app created at Startup Weekend Singapore in 2012.",
		Outcome:     "Grew to become a unicorn company valued at over $1 billion with millions of users across Asia.",
		KeyLessons: []string{
			"Simplified the process of listing items for sale with a mobile-first approach",
			"Focused on a specific pain point (the complexity of existing marketplaces)",
			"Emphasized community building and trust mechanisms",
		},
		Detail: "The founders built a mobile-first marketplace that made listing items as simple as taking a photo. They recognized that existing platforms like eBay were cumbersome on mobile devices and created a streamlined alternative.",
	},
	{
		Name:        "Standups",
		Description: "A daily team video update tool built at the Angelhack hackathon in 2012.",
		Outcome:     "Acquired by Trello (Atlassian) and integrated into their product suite.",
		KeyLessons: []string{
			"Addressed a specific workflow pain point (remote team coordination)",
			"Built a simple, focused tool rather than a complex suite",
			"Emphasized integration with existing tools and workflows",
		},
		Detail: "The team identified that remote teams struggled with daily standups across time zones. They created a solution that allowed team members to record short video updates that others could watch asynchronously.",
	},
	{
		Name:        "Docusign",
		Description: "Electronic signature technology conceptualized at a hackathon-like event.",
		Outcome:     "Became a public company with a multi-billion dollar market cap.",
		KeyLessons: []string{
			"Identified a universal pain point (the inefficiency of paper signatures)",
			"Focused on security and legal compliance from the beginning",
			"Prioritized ease of use for non-technical users",
		},
		Detail: "The founders recognized the massive inefficiency in printing, signing, scanning, and emailing documents. They created a secure, legally-binding alternative that saved time and reduced paper waste.",
	},
	{
		Name:        "Wildfire",
		Description: "A social media marketing platform prototyped at a hackathon in 2008.",
		Outcome:     "Acquired by Google for approximately $350 million in 2012.",
		KeyLessons: []string{
			"Identified an emerging need (brands running social media promotions)",
			"Created tools that simplified complex marketing workflows",
			"Evolved based on user feedback after the initial prototype",
		},
		Detail: "The team recognized that brands were struggling to create and manage promotions across multiple social platforms. They built tools that simplified this process, allowing even small businesses to run sophisticated social campaigns.",
	},
}

// PostHackathonStrategies holds follow-up advice keyed by goal.
var PostHackathonStrategies = map[string][]Tip{
	"product_development": {
		{
			Title:       "Validate Market Interest",
			Description: "Test market demand with landing pages, surveys, or beta signups.",
			Importance:  9,
			Detail:      "Create a simple landing page explaining your concept with an email signup form. Use social media and relevant communities to drive traffic and gauge interest.",
		},
		{
			Title:       "Refine Core Features",
			Description: "Identify and enhance the most valuable aspects of your hackathon prototype.",
			Importance:  8,
			Detail:      "Review judge feedback and user reactions to determine which features generated the most excitement. Focus development efforts on strengthening these areas first.",
		},
		{
			Title:       "Technical Debt Assessment",
			Description: "Evaluate what code can be kept and what needs refactoring.",
			Importance:  7,
			Detail:      "Hackathon code often prioritizes speed over maintainability. Conduct a thorough code review to identify critical areas requiring refactoring before scaling.",
		},
		{
			Title:       "Develop Roadmap",
			Description: "Create a prioritized feature roadmap based on hackathon learnings.",
			Importance:  8,
			Detail:      "Map out development phases from MVP to full product, with clear milestones and decision points for pivoting if necessary.",
		},
		{
			Title:       "Seek Early Adopters",
			Description: "Recruit beta users from the hackathon community and beyond.",
			Importance:  8,
			Detail:      "Leverage connections made during the hackathon to find users willing to provide regular feedback. Offer incentives for consistent participation in your beta program.",
		},
	},
	"funding_and_support": {
		{
			Title:       "Prepare Pitch Deck",
			Description: "Develop a comprehensive pitch based on your hackathon presentation.",
			Importance:  9,
			Detail:      "Expand your hackathon pitch with market analysis, competitive landscape, business model, and growth strategy. Include metrics and learnings from the hackathon.",
		},
		{
			Title:       "Apply to Accelerators",
			Description: "Submit your project to relevant startup accelerators and incubators.",
			Importance:  8,
			Detail:      "Research programs specifically interested in your domain. Highlight your hackathon success and any traction gained since the event in your applications.",
		},
		{
			Title:       "Network Follow-up",
			Description: "Connect with mentors, judges, and industry contacts from the hackathon.",
			Importance:  8,
			Detail:      "Send personalized follow-up emails within 48 hours of the event. Reference specific conversations and request brief calls to discuss development opportunities.",
		},
		{
			Title:       "Explore Grants and Competitions",
			Description: "Identify relevant grants, challenges, and follow-on competitions.",
			Importance:  7,
			Detail:      "Many organizations offer specialized funding for projects addressing specific sectors or problems. Review your solution's alignment with these opportunities.",
		},
		{
			Title:       "Consider Crowdfunding",
			Description: "Evaluate whether your project is suitable for crowdfunding platforms.",
			Importance:  6,
			Detail:      "Projects with clear consumer applications and visual appeal often perform well on crowdfunding platforms. Use your hackathon demo as the foundation for your campaign video.",
		},
	},
	"team_development": {
		{
			Title:       "Align Expectations",
			Description: "Have honest conversations about each team member's post-hackathon commitment.",
			Importance:  9,
			Detail:      "Discuss time availability, compensation expectations, equity considerations, and personal goals. Document agreements to prevent future misunderstandings.",
		},
		{
			Title:       "Formalize Structure",
			Description: "Establish formal roles and responsibilities if continuing as a team.",
			Importance:  8,
			Detail:      "Define leadership structure, decision-making processes, and communication protocols. Consider creating simple operating agreements even before formal legal structures.",
		},
		{
			Title:       "Skill Gap Analysis",
			Description: "Identify missing expertise needed for next development phases.",
			Importance:  7,
			Detail:      "Assess whether you need to recruit additional team members with specific skills or leverage freelancers for specialized tasks.",
		},
		{
			Title:       "Establish Working Rhythm",
			Description: "Create sustainable work processes and communication cadence.",
			Importance:  8,
			Detail:      "Set regular meeting schedules, define collaboration tools, and establish development workflows that accommodate team members' other commitments.",
		},
		{
			Title:       "Knowledge Transfer",
			Description: "Ensure critical information isn't siloed with individual team members.",
			Importance:  7,
			Detail:      "Document key architectural decisions, external service credentials, and development environment setup. Create shared resources for onboarding potential new team members.",
		},
	},
	"personal_growth": {
		{
			Title:       "Portfolio Enhancement",
			Description: "Document your hackathon project and contributions for your portfolio.",
			Importance:  8,
			Detail:      "Create case studies highlighting the problem, solution, your specific contributions, technologies used, and outcomes. Include visuals and links to working demos when possible.",
		},
		{
			Title:       "Skill Development Plan",
			Description: "Identify skills you want to strengthen based on hackathon experience.",
			Importance:  7,
			Detail:      "Reflect on challenges faced during the hackathon and create a learning plan to address these areas. This might include technical skills, presentation abilities, or project management techniques.",
		},
		{
			Title:       "Build Thought Leadership",
			Description: "Share insights and learnings through blog posts or talks.",
			Importance:  7,
			Detail:      "Write about your hackathon experience, technical challenges overcome, or domain-specific insights gained. This builds your personal brand and creates networking opportunities.",
		},
		{
			Title:       "Expand Network",
			Description: "Maintain relationships with fellow participants and mentors.",
			Importance:  8,
			Detail:      "Connect on LinkedIn, participate in hackathon community forums, and attend related meetups or events. These connections can lead to job opportunities, partnerships, or future hackathon teams.",
		},
		{
			Title:       "Hackathon Improvement",
			Description: "Prepare strategies for better performance in future hackathons.",
			Importance:  6,
			Detail:      "Analyze what worked well and what you'd change for your next hackathon. This might include preparation activities, team formation strategies, or presentation techniques.",
		},
	},
}

var domainTips = map[string]SpecialTip{
	"health": {
		Title:       "Healthcare Data Privacy",
		Description: "Pay special attention to HIPAA compliance and health data privacy.",
		Detail:      "Healthcare hackathons require strict attention to data privacy regulations. Use synthetic or properly anonymized data, implement robust encryption, and document your compliance measures clearly for judges.",
	},
	"education": {
		Title:       "Educational Accessibility",
		Description: "Ensure your educational solution works across different learning environments and abilities.",
		Detail:      "Educational hackathon projects should consider diverse learning needs. Implement accessibility features, support offline use cases, and design for various technical literacy levels to maximize your solution's impact.",
	},
	"environment": {
		Title:       "Environmental Impact Metrics",
		Description: "Quantify your solution's environmental benefits with clear metrics.",
		Detail:      "Environmental hackathon projects need concrete impact measures. Calculate carbon reduction, resource conservation, or efficiency improvements your solution provides, and visualize these metrics in your presentation.",
	},
	"finance": {
		Title:       "Financial Security First",
		Description: "Prioritize security and compliance in financial technology solutions.",
		Detail:      "For fintech hackathons, judges will scrutinize security aspects. Implement proper authentication, encryption for sensitive data, and be prepared to explain your security architecture during Q&A.",
	},
	"transportation": {
		Title:       "Multimodal Transportation Thinking",
		Description: "Consider how your solution integrates with various transportation methods.",
		Detail:      "Transportation hackathon winners often address connectivity between different modes of transport. Think beyond single vehicles and demonstrate how your solution creates a cohesive mobility ecosystem.",
	},
	"social_impact": {
		Title:       "Inclusive Design Process",
		Description: "Incorporate perspectives from affected communities in your design process.",
		Detail:      "Social impact hackathons value community-centered design. Reference specific community needs your solution addresses and explain how you would involve community members in refining your approach.",
	},
	"artificial_intelligence": {
		Title:       "AI Ethics and Bias Consideration",
		Description: "Address potential AI biases and ethical concerns proactively.",
		Detail:      "AI hackathon judges look for responsible technology use. Identify potential bias sources in your model, explain mitigation strategies, and demonstrate thoughtfulness about the ethical implications of your solution.",
	},
	"blockchain": {
		Title:       "Blockchain Practicality",
		Description: "Focus on practical blockchain applications with clear advantages over traditional approaches.",
		Detail:      "Successful blockchain hackathon projects demonstrate why decentralization offers tangible benefits for their specific use case. Clearly articulate the problem that centralization creates and how your blockchain solution resolves it.",
	},
	"gaming": {
		Title:       "Rapid Gameplay Prototyping",
		Description: "Create a playable prototype that demonstrates core mechanics quickly.",
		Detail:      "Gaming hackathons require demonstrable gameplay. Focus on one innovative mechanic rather than multiple features, use placeholder assets, and ensure judges can experience the core interaction loop in under a minute.",
	},
	"iot": {
		Title:       "IoT Simulation Fallback",
		Description: "Prepare software simulations alongside hardware demos for reliability.",
		Detail:      "IoT hackathons face hardware reliability challenges. Develop a software simulation that demonstrates your concept's functionality even if physical components encounter issues during presentation.",
	},
	"ar_vr": {
		Title:       "AR/VR Demo Contingencies",
		Description: "Create fallback demonstration options for AR/VR experiences.",
		Detail:      "AR/VR hackathons often face demo challenges. Prepare a video recording of your experience, screenshots of key interactions, and a simplified web version to ensure judges understand your concept regardless of technical difficulties.",
	},
	"data_science": {
		Title:       "Data Storytelling Focus",
		Description: "Emphasize insights and narrative over technical implementation details.",
		Detail:      "Data science hackathon winners excel at communication. Create compelling visualizations, focus on the story your data tells, and translate technical findings into business or social impact that non-technical judges will appreciate.",
	},
}

// DomainTip returns advice for the domain, or a cross-domain fallback when
// the domain is unknown.
func DomainTip(domain string) SpecialTip {
	if tip, ok := domainTips[domain]; ok {
		return tip
	}
	return SpecialTip{
		Title:       "Cross-Domain Innovation",
		Description: "Look for inspiration in adjacent fields to your problem domain.",
		Detail:      "Some of the most innovative hackathon projects apply techniques from seemingly unrelated domains. Research similar challenges in other industries and consider how their solutions might apply to your problem with creative adaptation.",
	}
}

var approachTips = map[string]SpecialTip{
	"mobile": {
		Title:       "Mobile Device Testing",
		Description: "Test your mobile app on multiple devices and screen sizes.",
		Detail:      "Mobile hackathon projects should function across different devices. Use responsive design, test on at least two different screen sizes, and consider offline functionality for a more robust demonstration.",
	},
	"web": {
		Title:       "Browser Compatibility",
		Description: "Ensure your web application works in different browsers.",
		Detail:      "Web hackathon projects should be tested in at least Chrome and one other browser. Keep a local version ready in case of internet connectivity issues, and optimize for the presentation environment's screen resolution.",
	},
	"api": {
		Title:       "API Documentation",
		Description: "Create clear documentation for your API with example requests and responses.",
		Detail:      "API-focused hackathon projects should include simple documentation. Prepare Postman collections or curl examples that judges can run, and create visualizations of your API architecture to clarify your implementation.",
	},
	"database": {
		Title:       "Database Performance",
		Description: "Optimize database queries and demonstrate scalability considerations.",
		Detail:      "Database hackathon projects should address performance. Implement indexing for common queries, prepare a sample dataset large enough to demonstrate real-world conditions, and document your schema design decisions.",
	},
	"machine_learning": {
		Title:       "Model Interpretability",
		Description: "Make your machine learning models interpretable and explainable.",
		Detail:      "ML hackathon projects benefit from transparency. Include feature importance visualizations, explain your training methodology, and prepare non-technical explanations of how your model arrives at its conclusions.",
	},
	"visualization": {
		Title:       "Interactive Visualizations",
		Description: "Create interactive data visualizations that judges can explore.",
		Detail:      "Visualization hackathon projects should allow interaction. Implement filtering, drilling down into data points, and different view options to let judges explore the data themselves and discover the insights you've identified.",
	},
	"hardware": {
		Title:       "Hardware Backup Plans",
		Description: "Prepare for hardware failures with backup components or simulations.",
		Detail:      "Hardware hackathon projects face reliability risks. Bring spare components, prepare a video demonstration as backup, and practice quick troubleshooting of common issues that might arise during presentation.",
	},
	"cloud": {
		Title:       "Cloud Cost Optimization",
		Description: "Address cost efficiency in your cloud architecture design.",
		Detail:      "Cloud-based hackathon projects should consider economics. Explain your resource optimization strategies, serverless function design, and how your architecture would scale cost-effectively beyond the prototype stage.",
	},
}

// ApproachTip returns advice for the technical approach, or a generic
// technology-selection fallback when the approach is unknown.
func ApproachTip(approach string) SpecialTip {
	if tip, ok := approachTips[approach]; ok {
		return tip
	}
	return SpecialTip{
		Title:       "Technology Selection Justification",
		Description: "Be prepared to justify your technology choices against alternatives.",
		Detail:      "Judges often ask why you selected particular technologies. Research the strengths and weaknesses of your chosen approach compared to alternatives, and prepare a concise explanation of why your selection is optimal for your specific problem.",
	}
}

// ComplexityTip returns advice appropriate for the problem's complexity
// score on a [0,1] scale.
func ComplexityTip(complexity float64) SpecialTip {
	switch {
	case complexity < 0.3:
		return SpecialTip{
			Title:       "Execution Over Complexity",
			Description: "For simpler problems, focus on exceptional execution rather than overcomplicating.",
			Detail:      "When tackling a straightforward problem, judges look for outstanding implementation quality. Focus on user experience polish, robust testing, and clearly communicating your solution's excellence in solving the specific problem.",
		}
	case complexity < 0.7:
		return SpecialTip{
			Title:       "Balanced Scope Management",
			Description: "For moderately complex problems, prioritize critical features and communicate tradeoffs.",
			Detail:      "Medium-complexity problems require thoughtful scoping. Create a tiered feature list with must-haves and nice-to-haves, focus on completing core functionality flawlessly, and clearly explain your prioritization decisions to judges.",
		}
	default:
		return SpecialTip{
			Title:       "Complexity Decomposition",
			Description: "For highly complex problems, break down your approach into manageable components.",
			Detail:      "Complex problems benefit from clear architecture. Create visual diagrams showing how you've modularized the challenge, focus on proving the most innovative or difficult component works, and outline how the pieces connect into a comprehensive solution.",
		}
	}
}

var userTips = map[string]SpecialTip{
	"consumers": {
		Title:       "Consumer Onboarding Flow",
		Description: "Design a frictionless first-time user experience for consumer products.",
		Detail:      "Consumer-focused hackathon projects should prioritize intuitive onboarding. Design for zero learning curve, implement progressive disclosure of features, and create a compelling 'aha moment' that judges will experience during your demo.",
	},
	"businesses": {
		Title:       "Business ROI Focus",
		Description: "Quantify the business value and return on investment for B2B solutions.",
		Detail:      "B2B hackathon projects should demonstrate economic impact. Calculate potential time/cost savings, revenue generation, or efficiency improvements your solution provides, and translate these into compelling ROI estimates for business adoption.",
	},
	"government": {
		Title:       "Public Sector Compliance",
		Description: "Address regulatory requirements and accessibility standards for government solutions.",
		Detail:      "Government-focused hackathon projects must consider compliance. Reference relevant regulations or standards (like ADA, COPPA, etc.), implement basic accessibility features, and explain how your solution fits within existing governmental frameworks.",
	},
	"healthcare_providers": {
		Title:       "Clinical Workflow Integration",
		Description: "Design solutions that integrate into existing healthcare workflows.",
		Detail:      "Healthcare provider hackathon projects should minimize disruption. Research typical clinical processes, explain how your solution fits into existing workflows with minimal training required, and address potential implementation barriers.",
	},
	"educators": {
		Title:       "Educational Assessment Features",
		Description: "Include ways to measure learning outcomes in education-focused solutions.",
		Detail:      "Education hackathon projects benefit from assessment capabilities. Implement features that help educators measure effectiveness, track learner progress, and generate insights about knowledge gaps or areas for improvement.",
	},
	"researchers": {
		Title:       "Research Methodology Transparency",
		Description: "Document your research methodology and data handling approach clearly.",
		Detail:      "Research-focused hackathon projects require methodological rigor. Document your data sources, processing methods, and analysis techniques with scientific precision, and be prepared to discuss limitations and further research opportunities.",
	},
}

// UserTip returns advice for the target-user category, or a user-testing
// fallback when the category is unknown.
func UserTip(userType string) SpecialTip {
	if tip, ok := userTips[userType]; ok {
		return tip
	}
	return SpecialTip{
		Title:       "User-Centered Testing",
		Description: "Conduct basic user testing even within hackathon time constraints.",
		Detail:      "Regardless of user type, judges value evidence of user feedback. Test your concept with even 2-3 potential users during the hackathon, document their feedback, and explain how you incorporated their input into your solution.",
	}
}
