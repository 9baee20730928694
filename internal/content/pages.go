package content

// Home page.
var (
	HomeFeatures = []Card{
		{Title: "Fast Development", Description: "Rapid prototyping and deployment with cutting-edge technologies"},
		{Title: "Expert Team", Description: "Experienced developers with proven track record"},
		{Title: "Quality Assured", Description: "Rigorous testing and quality control processes"},
	}
	HomeServices = []Card{
		{Title: "Web Development", Description: "Modern, responsive web applications"},
		{Title: "Mobile Apps", Description: "Native and cross-platform mobile solutions"},
		{Title: "Cloud Solutions", Description: "Scalable cloud infrastructure and services"},
		{Title: "UI/UX Design", Description: "Beautiful, user-centered design experiences"},
	}
	HomeStats = []Stat{
		{Value: "50+", Label: "Projects Completed"},
		{Value: "25+", Label: "Happy Clients"},
		{Value: "10+", Label: "Team Members"},
		{Value: "3+", Label: "Years Experience"},
	}
)

// About page.
var (
	Story = []string{
		"Founded in 2021, Selam Software Technologies emerged from a simple belief: technology should serve humanity and drive positive change. Our journey began with a small team of passionate developers in Addis Ababa, Ethiopia.",
		"Today, we've grown into a dynamic software development company that serves clients across various industries. We specialize in creating custom software solutions, web applications, and mobile apps that solve real-world problems.",
		"Our name \"Selam\" means \"peace\" in Amharic, reflecting our commitment to creating harmonious solutions that bring technology and human needs together.",
	}
	Values = []Card{
		{Title: "Innovation", Description: "We constantly push the boundaries of technology to deliver cutting-edge solutions."},
		{Title: "Client First", Description: "Our clients' success is our success. We prioritize their needs above all else."},
		{Title: "Excellence", Description: "We maintain the highest standards of quality in everything we do."},
		{Title: "Collaboration", Description: "We believe in the power of teamwork and open communication."},
	}
	Team = []Person{
		{Name: "Abraham Tadesse", Role: "CEO & Founder", Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop&crop=face"},
		{Name: "Sarah Kebede", Role: "CTO", Image: "https://images.unsplash.com/photo-1494790108755-2616b1e9ba79?w=300&h=300&fit=crop&crop=face"},
		{Name: "Daniel Mekuria", Role: "Lead Developer", Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop&crop=face"},
		{Name: "Hanan Ahmed", Role: "UI/UX Designer", Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=300&h=300&fit=crop&crop=face"},
	}
	Mission = "To empower businesses and organizations with innovative software solutions that drive growth, efficiency, and success. We strive to make technology accessible and beneficial for everyone."
	Vision  = "To be the leading software development company in Ethiopia and beyond, recognized for our innovation, quality, and commitment to transforming the digital landscape of Africa."
)

// Services page.
var (
	Services = []Service{
		{
			Title:       "Custom Software Development",
			Description: "Tailored software solutions built from scratch to meet your specific business requirements and objectives.",
			Features:    []string{"Full-stack development", "API integration", "Database design", "Quality assurance"},
			Price:       "Starting at $5,000",
		},
		{
			Title:       "Web Application Development",
			Description: "Modern, responsive web applications using cutting-edge technologies and best practices.",
			Features:    []string{"React/Vue.js development", "Progressive Web Apps", "E-commerce solutions", "CMS development"},
			Price:       "Starting at $3,000",
		},
		{
			Title:       "Mobile App Development",
			Description: "Native and cross-platform mobile applications for iOS and Android devices.",
			Features:    []string{"Native iOS/Android", "React Native", "Flutter development", "App store deployment"},
			Price:       "Starting at $8,000",
		},
		{
			Title:       "Database Solutions",
			Description: "Comprehensive database design, optimization, and management services for your applications.",
			Features:    []string{"Database design", "Performance optimization", "Data migration", "Backup solutions"},
			Price:       "Starting at $2,000",
		},
		{
			Title:       "Security & Compliance",
			Description: "Robust security implementations and compliance solutions to protect your digital assets.",
			Features:    []string{"Security audits", "Penetration testing", "GDPR compliance", "Data encryption"},
			Price:       "Starting at $4,000",
		},
		{
			Title:       "Technical Support",
			Description: "Ongoing technical support and maintenance services to ensure your systems run smoothly.",
			Features:    []string{"24/7 monitoring", "Bug fixes", "Performance optimization", "Regular updates"},
			Price:       "Starting at $500/month",
		},
	}
	Process = []Step{
		{Number: "01", Title: "Discovery & Planning", Description: "We analyze your requirements and create a detailed project roadmap."},
		{Number: "02", Title: "Design & Prototype", Description: "Creating wireframes and prototypes to visualize the final product."},
		{Number: "03", Title: "Development", Description: "Building your solution using agile methodology with regular updates."},
		{Number: "04", Title: "Testing & Launch", Description: "Comprehensive testing followed by deployment and go-live support."},
	}
)

// Products page.
var (
	ProductCategories = []string{"All", "Enterprise", "Education", "Retail", "Healthcare", "Productivity", "FinTech"}
	CustomSolutions   = []Card{
		{Title: "Consultation", Description: "We understand your unique requirements"},
		{Title: "Custom Development", Description: "Tailored solutions built from scratch"},
		{Title: "Deployment & Support", Description: "Full deployment and ongoing maintenance"},
	}
)

// IsCategory reports whether name is one of the filter buttons.
func IsCategory(name string) bool {
	for _, c := range ProductCategories {
		if c == name {
			return true
		}
	}
	return false
}

// Jobs page.
var (
	JobStats = []Stat{
		{Value: "50+", Label: "Team Members"},
		{Value: "15+", Label: "Countries"},
		{Value: "100+", Label: "Projects Delivered"},
		{Value: "5", Label: "Years Experience"},
	}
	Benefits = []Card{
		{Title: "Great Team Culture", Description: "Work with passionate professionals in a collaborative environment"},
		{Title: "Learning & Development", Description: "Continuous learning opportunities and professional development"},
		{Title: "Competitive Benefits", Description: "Attractive salary packages and comprehensive benefits"},
	}
)

// Contact page.
var (
	ContactCards = []ContactCard{
		{Title: "Email", Details: []string{"info@selamsoftware.com", "support@selamsoftware.com"}, Description: "Send us an email anytime"},
		{Title: "Phone", Details: []string{"+251 911 123 456", "+251 922 789 012"}, Description: "Mon-Fri from 8am to 6pm"},
		{Title: "Office", Details: []string{"Bole Sub City", "Addis Ababa, Ethiopia"}, Description: "Come visit our office"},
		{Title: "Business Hours", Details: []string{"Mon - Fri: 8:00 AM - 6:00 PM", "Sat: 9:00 AM - 2:00 PM"}, Description: "We're here to help"},
	}
	OfficeAddress = []string{CompanyName, "Bole Atlas Building, 5th Floor", "Bole Sub City", "Addis Ababa, Ethiopia"}
	OfficeVisit   = []string{
		"Free consultation on your project",
		"Meet our experienced team",
		"Tour our modern development facility",
		"Discuss your requirements in detail",
	}
	FAQ = []QA{
		{
			Question: "How long does a typical project take?",
			Answer:   "Project timelines vary based on complexity and requirements. Simple websites take 2-4 weeks, while complex applications can take 3-6 months. We provide detailed timelines during consultation.",
		},
		{
			Question: "Do you provide ongoing support?",
			Answer:   "Yes, we offer comprehensive support and maintenance packages. This includes bug fixes, updates, security patches, and feature enhancements.",
		},
		{
			Question: "What technologies do you specialize in?",
			Answer:   "We work with modern technologies including React, Vue.js, Node.js, Python, cloud platforms (AWS, Azure), and mobile development frameworks.",
		},
	}
)

// Footer.
var FooterLinks = []Link{
	{Name: "Home", Path: "/"},
	{Name: "About", Path: "/about"},
	{Name: "Services", Path: "/services"},
	{Name: "Products", Path: "/products"},
	{Name: "Careers", Path: "/jobs"},
}
