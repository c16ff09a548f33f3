package models

// Site content records. These are stored as JSON documents in the content
// store (one document per store key), not as individual database rows, so
// the site can move between database backends without migrations.

// SiteConfig is the singleton site configuration edited from the admin
// settings form. Updated wholesale; unset fields keep their value.
type SiteConfig struct {
	SiteName       string `json:"siteName"`
	HeroHeadline   string `json:"heroHeadline"`
	HeroSubline    string `json:"heroSubheadline"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`
	SupportHours   string `json:"supportHours"`
}

// Lead is a contact-form submission. Immutable once created.
type Lead struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
	Date            string `json:"date"` // YYYY-MM-DD, assigned at creation
}

// BlogPost is an admin-authored article stub shown on the resources page.
type BlogPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Author  string   `json:"author"`
	Date    string   `json:"date"` // YYYY-MM-DD, assigned at creation
	Tags    []string `json:"tags"`
}

// ServicePackage is a priced offering. The three packages are seeded and
// can be edited but not created or deleted.
type ServicePackage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"isPopular,omitempty"`
}

// Testimonial is a static read-only entry; not persisted.
type Testimonial struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
	Content     string `json:"content"`
}

// Notification types surfaced to the admin UI.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

// Notification is a transient user-facing status message. Never persisted.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// DefaultSiteConfig returns the fallback configuration used when the
// store holds no config document yet.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:       "Obas Publications",
		HeroHeadline:   "Elevate Your Academic Research",
		HeroSubline:    "Professional editing and publication support for scholars aiming for high-impact international journals.",
		PrimaryColor:   "#1e3a8a",
		SecondaryColor: "#ca8a04",
		ContactEmail:   "support@obaspublications.com",
		ContactPhone:   "+234 800 123 4567",
		ContactAddress: "Opposite Zenith Bank, Beside FUNAAB Gate, Alabata Road, Camp, Abeokuta, Ogun State",
		SupportHours:   "Mon - Sat: 9:00 AM - 5:00 PM (WAT)",
	}
}

// DefaultServices returns the three seeded service packages.
func DefaultServices() []ServicePackage {
	return []ServicePackage{
		{
			ID:          "1",
			Title:       "Essential Editing",
			Description: "Grammar, syntax, and flow correction for clear communication.",
			Price:       "₦150,000",
			Features:    []string{"Grammar & Spelling", "Sentence Structure", "Flow & Clarity", "3-Day Turnaround"},
		},
		{
			ID:          "2",
			Title:       "Publication-Ready",
			Description: "Comprehensive editing ensuring adherence to journal guidelines.",
			Price:       "₦350,000",
			Features:    []string{"Deep Editing", "Journal Formatting", "Reference Check", "Cover Letter Creation", "Unlimited Revisions"},
			IsPopular:   true,
		},
		{
			ID:          "3",
			Title:       "Scientific Review",
			Description: "Technical review by subject matter experts in your field.",
			Price:       "₦600,000",
			Features:    []string{"Technical Accuracy Check", "Methodology Review", "Statistical Analysis Check", "Detailed Report"},
		},
	}
}

// DefaultBlogPosts returns the starter articles shown until the admin
// publishes their own.
func DefaultBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:      "1",
			Title:   "How to Select the Right Journal for Your Research",
			Excerpt: "Avoid predatory journals and find the perfect home for your manuscript with these 5 tips.",
			Author:  "Dr. Obas",
			Date:    "2023-10-15",
			Tags:    []string{"Publishing", "Tips"},
		},
		{
			ID:      "2",
			Title:   "Understanding Impact Factors and CiteScore",
			Excerpt: "Demystifying the metrics that matter in academic publishing.",
			Author:  "Edit Team",
			Date:    "2023-11-02",
			Tags:    []string{"Metrics", "Academic"},
		},
	}
}

// Testimonials is the static list rendered on the home page.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			ID:          "1",
			Name:        "Dr. Adewale Johnson",
			Role:        "Senior Lecturer",
			Institution: "University of Lagos",
			Content:     "Obas Publications transformed my rejected manuscript into a paper accepted by a Q1 Elsevier journal. Highly recommended!",
		},
		{
			ID:          "2",
			Name:        "Prof. Chioma Okeke",
			Role:        "Researcher",
			Institution: "Covenant University",
			Content:     "The turnaround time was incredible. The \"Publication-Ready\" package saved me weeks of formatting headaches.",
		},
		{
			ID:          "3",
			Name:        "Dr. Musa Ibrahim",
			Role:        "Ph.D. Candidate",
			Institution: "Ahmadu Bello University",
			Content:     "Professional, affordable, and strictly confidential. Their title optimizer tool is a game changer.",
		},
	}
}
