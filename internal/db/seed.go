package db

import (
	"fmt"

	"gorm.io/gorm"
)

type templateSeed struct {
	ID        string
	Title     string
	Subtitle  *string
	Icon      string
	Color     string
	Summary   string
	Details   string
	SortOrder int
}

func ptr(s string) *string { return &s }

// The agency's service catalog. Seeded as an upsert so catalog copy edits ship
// with a deploy without touching proposals that reference the rows.
var serviceTemplateSeeds = []templateSeed{
	{
		ID:    "social",
		Title: "Social Media Management",
		Icon:  "📱",
		Color: "#FF4D6A",
		Summary: "Complete social media management across all major platforms. " +
			"We create engaging content, grow your following, and drive meaningful engagement.",
		Details: `[
			{"label": "Strategy Development", "desc": "Custom social media strategy aligned with your brand goals and target audience"},
			{"label": "Content Planning & Creation", "desc": "Professional content calendar with engaging posts, stories, and reels"},
			{"label": "Platform Management", "desc": "Daily management of all social media platforms including community engagement"},
			{"label": "Trend & Event Alignment", "desc": "Capitalizing on trending topics and seasonal events relevant to your brand"}
		]`,
		SortOrder: 1,
	},
	{
		ID:    "strategy",
		Title: "Meeting & Strategy",
		Icon:  "🎯",
		Color: "#6C5CE7",
		Summary: "Regular strategic meetings to align marketing efforts with your business objectives. " +
			"Data-driven planning for maximum impact.",
		Details: `[
			{"label": "Strategic Meetings", "desc": "Regular check-ins to review performance and adjust strategy"},
			{"label": "Actionable Planning", "desc": "Clear roadmaps with defined goals, timelines, and KPIs"},
			{"label": "Continuous Optimization", "desc": "Ongoing refinement based on data insights and market changes"}
		]`,
		SortOrder: 2,
	},
	{
		ID:    "google_ads",
		Title: "Google Ads",
		Icon:  "🔍",
		Color: "#00B894",
		Summary: "Strategic Google Ads campaigns that put your business in front of high-intent customers " +
			"actively searching for your services.",
		Details: `[
			{"label": "Competitor & Market Analysis", "desc": "Deep analysis of your competitive landscape and market opportunities"},
			{"label": "Keyword Research & Ad Creation", "desc": "Targeted keyword selection and compelling ad copy that converts"},
			{"label": "Bid Optimization & Budget Management", "desc": "Maximizing ROI through smart bidding strategies and budget allocation"},
			{"label": "Performance Tracking", "desc": "Detailed tracking and reporting on all campaign metrics"}
		]`,
		SortOrder: 3,
	},
	{
		ID:       "meta_ads",
		Title:    "META Ads",
		Subtitle: ptr("Facebook & Instagram"),
		Icon:     "📣",
		Color:    "#0984E3",
		Summary: "Targeted advertising across Facebook and Instagram to reach your ideal customers " +
			"with precision targeting and compelling creatives.",
		Details: `[
			{"label": "Competitor & Market Analysis", "desc": "Understanding your competitive landscape on social platforms"},
			{"label": "Keyword Research & Ad Creation", "desc": "Audience targeting and creative ad development that resonates"},
			{"label": "Bid Optimization & Budget", "desc": "Smart budget allocation across campaigns for maximum return"},
			{"label": "Performance Tracking & Adjustments", "desc": "Real-time optimization based on campaign performance data"}
		]`,
		SortOrder: 4,
	},
	{
		ID:    "email",
		Title: "Email Marketing",
		Icon:  "✉️",
		Color: "#E17055",
		Summary: "Strategic email campaigns that nurture leads, retain customers, and drive conversions " +
			"with personalized messaging.",
		Details: `[
			{"label": "Professional Email Design", "desc": "Beautiful, on-brand email templates that look great on all devices"},
			{"label": "Effective Copywriting", "desc": "Compelling email copy that drives opens, clicks, and conversions"},
			{"label": "Audience Segmentation", "desc": "Targeted messaging based on customer behavior and preferences"},
			{"label": "Performance Tracking", "desc": "Detailed analytics on open rates, click rates, and conversions"}
		]`,
		SortOrder: 5,
	},
	{
		ID:    "media",
		Title: "Media Creation",
		Icon:  "🎬",
		Color: "#FDCB6E",
		Summary: "Professional photo and video production that tells your brand story and captures attention " +
			"across all platforms.",
		Details: `[
			{"label": "Photo & Video Production", "desc": "Professional-quality visual content for all marketing channels"},
			{"label": "Creative Direction & Storytelling", "desc": "Compelling narratives that connect with your audience emotionally"},
			{"label": "Branded Content", "desc": "Consistent visual identity across all produced content"},
			{"label": "High-Quality Editing", "desc": "Professional post-production for polished final deliverables"}
		]`,
		SortOrder: 6,
	},
	{
		ID:    "seo",
		Title: "SEO & Website Management",
		Icon:  "🌐",
		Color: "#A29BFE",
		Summary: "Comprehensive SEO and website management to improve your online visibility and drive " +
			"organic traffic growth.",
		Details: `[
			{"label": "SEO Optimization", "desc": "On-page and off-page optimization for better search rankings"},
			{"label": "Website Management & Updates", "desc": "Regular updates, maintenance, and content additions"},
			{"label": "Performance Monitoring", "desc": "Tracking site speed, uptime, and user experience metrics"},
			{"label": "Content Refresh & Strategy", "desc": "Keeping your content fresh and aligned with SEO best practices"},
			{"label": "Technical SEO", "desc": "Schema markup, site structure, and technical optimizations"}
		]`,
		SortOrder: 7,
	},
	{
		ID:    "design",
		Title: "Graphic Design",
		Icon:  "🎨",
		Color: "#E84393",
		Summary: "Eye-catching graphic design that strengthens your brand identity and makes your marketing " +
			"materials stand out.",
		Details: `[
			{"label": "Logo & Brand Identity", "desc": "Professional logo design and complete brand identity systems"},
			{"label": "Marketing Materials", "desc": "Flyers, brochures, business cards, and promotional materials"},
			{"label": "Social Media Graphics", "desc": "Custom graphics optimized for each social media platform"},
			{"label": "Web Design Elements", "desc": "Banners, icons, and visual elements for your digital presence"}
		]`,
		SortOrder: 8,
	},
	{
		ID:    "reports",
		Title: "Reports & Analytics",
		Icon:  "📊",
		Color: "#00CEC9",
		Summary: "Comprehensive reporting and analytics that give you clear insights into your marketing " +
			"performance and ROI.",
		Details: `[
			{"label": "Performance Metrics", "desc": "Detailed breakdown of KPIs across all marketing channels"},
			{"label": "Action Updates", "desc": "Clear summary of completed actions and upcoming initiatives"},
			{"label": "Strategic Insights", "desc": "Data-driven recommendations for continued growth and optimization"}
		]`,
		SortOrder: 9,
	},
}

func seedServiceTemplates(db *gorm.DB) error {
	for _, seed := range serviceTemplateSeeds {
		err := db.Exec(`
			INSERT INTO service_templates (id, title, subtitle, icon, color, summary, details, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?::jsonb, ?)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				subtitle = EXCLUDED.subtitle,
				icon = EXCLUDED.icon,
				color = EXCLUDED.color,
				summary = EXCLUDED.summary,
				details = EXCLUDED.details,
				sort_order = EXCLUDED.sort_order
		`, seed.ID, seed.Title, seed.Subtitle, seed.Icon, seed.Color, seed.Summary, seed.Details, seed.SortOrder).Error
		if err != nil {
			return fmt.Errorf("seed template %s: %w", seed.ID, err)
		}
	}
	return nil
}
