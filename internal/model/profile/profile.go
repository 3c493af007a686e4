package profile

// Profile captures the portfolio owner's public context used to steer
// assistant replies. It is compiled in and never mutated after load.
type Profile struct {
	Owner        string
	Pronouns     string
	Contact      Contact
	Personal     Personal
	Availability Availability
	TechStack    []TechCategory
	Projects     []Project
}

// Contact lists the details the assistant is allowed to share.
type Contact struct {
	Email       string
	Phone       string
	ContactPage string
}

// Personal holds non-professional details the owner chose to publish.
type Personal struct {
	LifeVerse string
}

// Availability describes what work the owner is currently open to.
type Availability struct {
	Status      string
	Focus       []string
	Location    string
	ContactHint string
}

// TechCategory is one named group of the tech stack. Categories are kept as
// an ordered slice so prompt output stays deterministic.
type TechCategory struct {
	Name  string
	Items []string
}

// Project is a single portfolio entry.
type Project struct {
	Name        string
	Description string
	Tech        []string
	Live        string
}

// Seed provides the owner profile published on the portfolio site.
func Seed() Profile {
	return Profile{
		Owner:    "Rhen-Rhen Lumbo",
		Pronouns: "He/Him",
		Contact: Contact{
			Email:       "lumborhenrhena@gmail.com",
			Phone:       "09612961879",
			ContactPage: "/contact",
		},
		Personal: Personal{
			LifeVerse: "Deuteronomy 31:8 The LORD himself goes before you and will be with you; He will never leave you nor forsake you. Do not be afraid; do not be discouraged.",
		},
		Availability: Availability{
			Status:      "Open to internships and freelance projects",
			Focus:       []string{"Frontend development", "Portfolio/Landing pages", "Small business websites"},
			Location:    "Philippines San Pablo City, Laguna",
			ContactHint: "Use the Contact section on the portfolio to reach out.",
		},
		TechStack: []TechCategory{
			{
				Name: "Frontend",
				Items: []string{
					"HTML",
					"CSS",
					"JavaScript",
					"React",
					"TypeScript",
					"Tailwind CSS",
					"Framer Motion",
				},
			},
			{
				Name:  "Tools",
				Items: []string{"Git", "GitHub", "Vite", "Vercel"},
			},
			{
				Name:  "Backend (currently learning)",
				Items: []string{"Node.js (learning)", "Express (learning)"},
			},
		},
		Projects: []Project{
			{
				Name:        "Photographer Portfolio Website",
				Description: "A clean and elegant photography portfolio website focused on creative showcase and personal branding.",
				Tech:        []string{"React", "TypeScript", "Tailwind CSS", "Framer Motion"},
				Live:        "https://photographer-portfolio-jet-three.vercel.app",
			},
			{
				Name:        "SmileCare Booking App",
				Description: "A modern dental clinic website with professional UI and clear consultation booking flow.",
				Tech:        []string{"React", "TypeScript", "Tailwind CSS", "Framer Motion", "Vite", "Vercel"},
				Live:        "https://smilecarebookingapp.vercel.app",
			},
		},
	}
}
