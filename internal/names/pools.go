package names

var companyNames = []string{
	"Acme Corporation", "TechFlow Solutions", "CloudSync Inc", "DataVault Systems",
	"SecureNet Technologies", "InnovateLabs", "ScaleUp Software", "EnterpriseWorks",
	"NextGen Platforms", "AgileSolutions",
	"Streamline Analytics", "Precision Metrics", "Velocity Dynamics", "Catalyst Systems",
	"Nexus Intelligence", "Quantum Solutions", "Apex Technologies", "Summit Software",
	"Horizon Platforms", "Vertex Systems",
	"SynergyWorks", "Momentum Labs", "Pinnacle Software", "Elevate Technologies",
	"Ascend Systems", "Zenith Platforms", "Fusion Solutions", "Core Technologies",
	"Prime Systems", "Elite Software",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
	"Benjamin", "Samantha", "Samuel", "Katherine", "Raymond", "Christine", "Gregory", "Debra",
	"Frank", "Rachel", "Alexander", "Carolyn", "Patrick", "Janet", "Jack", "Catherine",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
	"Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson",
	"Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward",
	"Richardson", "Watson", "Brooks", "Chavez", "Wood", "James", "Bennett", "Gray",
	"Mendoza", "Ruiz", "Hughes", "Price", "Alvarez", "Castillo", "Sanders", "Patel",
	"Myers", "Long", "Ross", "Foster", "Jimenez", "Powell", "O'Brien", "D'Angelo",
}

// TeamNames are candidate team names, sampled without replacement per
// organization.
var TeamNames = []string{
	"Platform Engineering", "Frontend Team", "Backend Services", "DevOps", "Infrastructure",
	"Mobile Engineering", "Data Engineering", "Security Team", "QA Engineering",
	"Product Management", "Product Design", "User Experience", "Product Analytics",
	"Growth Marketing", "Content Marketing", "Product Marketing", "Demand Generation",
	"Brand Marketing", "Marketing Operations",
	"Enterprise Sales", "SMB Sales", "Sales Engineering", "Customer Success",
	"People Operations", "Finance", "Legal", "IT Operations", "Facilities",
	"Customer Support", "Business Development", "Partnerships",
}

// TagNames are candidate tag names, sampled without replacement per
// organization.
var TagNames = []string{
	"high-priority", "low-priority", "urgent", "blocked",
	"needs-review", "in-review", "ready", "on-hold",
	"bug", "feature", "enhancement", "documentation", "refactor",
	"frontend", "backend", "mobile", "infrastructure", "security",
	"api", "ui", "database", "testing", "deployment",
	"customer-request", "internal", "external", "breaking-change",
}

// TagColors are the labels shown as tag colors.
var TagColors = []string{"blue", "green", "orange", "red", "purple", "pink", "yellow", "cyan", "teal"}

// ProjectColors extends the tag palette with brown.
var ProjectColors = []string{"blue", "green", "orange", "red", "purple", "pink", "yellow", "cyan", "teal", "brown"}

var projectNameTemplates = map[string][]string{
	"engineering_sprint": {
		"Q1 2024 Sprint {n}", "Sprint {n} - Platform", "Engineering Sprint {n}",
		"Backend Services Sprint {n}", "Frontend Sprint {n}", "Infrastructure Sprint {n}",
	},
	"bug_tracking": {
		"Bug Tracking - {month}", "Production Issues", "Critical Bugs",
		"Platform Bugs", "Customer Reported Issues",
	},
	"marketing_campaign": {
		"Q{n} Marketing Campaign", "Product Launch Campaign", "Brand Awareness {year}",
		"Growth Campaign - {month}", "Content Marketing {quarter}",
	},
	"product_roadmap": {
		"Product Roadmap {year}", "Feature Development {quarter}", "Platform Evolution",
		"Product Strategy {year}", "Innovation Pipeline",
	},
	"operations": {
		"Operations {quarter}", "Process Improvement", "Infrastructure Updates",
		"Compliance {year}", "Internal Tools",
	},
	"design": {
		"Design System", "UI/UX Improvements", "Design Sprint {n}",
		"User Experience {quarter}", "Visual Identity",
	},
}

var taskNameTemplates = map[string][]string{
	"engineering_sprint": {
		"Implement {feature}", "Fix bug in {component}", "Refactor {module}",
		"Add {feature} to {component}", "Optimize {component}", "Update {component}",
	},
	"bug_tracking": {
		"Fix {issue} in {component}", "Resolve {problem}", "Patch {vulnerability}",
		"Fix crash on {scenario}", "Resolve data issue",
	},
	"marketing_campaign": {
		"Create {content} for {campaign}", "Design {asset}", "Write {content_type}",
		"Schedule {activity}", "Analyze {metric}",
	},
	"product_roadmap": {
		"Research {feature}", "Design {feature}", "Plan {feature}",
		"Document {feature}", "Validate {feature}",
	},
	"operations": {
		"Update {process}", "Review {policy}", "Process {request}",
		"Audit {system}", "Implement {improvement}",
	},
	"design": {
		"Design {element}", "Create {asset}", "Update {component} design",
		"Refine {element}", "Create design system {part}",
	},
}

var subtaskTemplates = []string{
	"Review {component}",
	"Test {feature}",
	"Update docs",
	"Verify requirements",
	"Implement component",
	"Fix bug",
	"Refactor {component}",
	"Document {feature}",
}

var taskComponents = []string{"API", "UI", "backend", "frontend", "database", "service", "module"}
var taskFeatures = []string{"authentication", "dashboard", "reporting", "integration", "analytics"}

var subtaskComponents = []string{"code", "design", "API", "UI", "tests", "documentation"}
var subtaskFeatures = []string{"functionality", "integration", "authentication", "dashboard"}

var commentTemplates = []string{
	"Starting work on this now",
	"Making good progress",
	"This is complete and ready for review",
	"Can someone clarify the requirements?",
	"Looks good!",
	"Thanks for the update!",
	"Updated based on feedback",
}

var months = []string{"January", "February", "March", "April", "May", "June"}
var quarters = []string{"Q1", "Q2", "Q3", "Q4"}
