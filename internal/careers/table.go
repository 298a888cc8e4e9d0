package careers

// Noise per feature shared by every profile.
var defaultVariance = [FeatureCount]float64{80, 80, 80, 80, 90, 90, 80, 80, 30}

func defaultEntries() []entry {
	return []entry{
		{
			label:    SoftwareEngineer,
			profile:  Profile{Mean: [FeatureCount]float64{85, 75, 60, 40, 90, 45, 55, 60, 15}, Variance: defaultVariance},
			keywords: []string{"code", "coding", "software", "apps", "web", "robot", "program", "ml", "ai", "backend", "frontend"},
			roadmap: []string{
				"Master DSA, OOP and problem solving (LeetCode/HackerRank)",
				"Build 3-5 projects (web/mobile/systems) with clean code",
				"Git/GitHub, SQL/NoSQL, REST; one cloud (AWS/GCP/Azure)",
				"Basics of CI/CD and Docker; dip toes into Kubernetes",
				"Internships and open source; refine resume and LinkedIn",
			},
		},
		{
			label:    DataScientist,
			profile:  Profile{Mean: [FeatureCount]float64{88, 80, 65, 45, 75, 45, 55, 65, 15}, Variance: defaultVariance},
			keywords: []string{"data", "stats", "statistics", "analytics", "machine learning", "ml", "ai", "research", "pandas", "kaggle"},
			roadmap: []string{
				"Stats, probability, linear algebra plus Python/R",
				"EDA and feature engineering (pandas/matplotlib)",
				"ML (scikit-learn/XGBoost), then DL (PyTorch/TensorFlow)",
				"2-3 domain projects (NLP/CV/time series) with clear impact",
				"Kaggle and a portfolio; communicate results and trade-offs",
			},
		},
		{
			label:    DoctorHealthcare,
			profile:  Profile{Mean: [FeatureCount]float64{60, 92, 75, 45, 20, 40, 65, 70, 15}, Variance: defaultVariance},
			keywords: []string{"bio", "biology", "medicine", "health", "care", "doctor", "hospital", "clinic"},
			roadmap: []string{
				"Bio/Chem foundations; entrance prep",
				"Shadow or volunteer in clinics; basic patient communication",
				"Explore telemedicine and AI-assisted diagnostics",
				"Shortlist specializations; plan a study timeline",
				"Contribute to case studies or public health projects",
			},
		},
		{
			label:    LawyerLegal,
			profile:  Profile{Mean: [FeatureCount]float64{55, 55, 90, 55, 25, 45, 75, 85, 15}, Variance: defaultVariance},
			keywords: []string{"law", "legal", "justice", "rights", "policy", "court", "litigation", "contract"},
			roadmap: []string{
				"Legal writing and case-briefing drills",
				"Debates/MUN; articulation and reasoning",
				"Intro to cyber/IP law and tech contracts",
				"1-2 internships; pro bono or clinic work",
				"Build a writing portfolio (notes/blogs)",
			},
		},
		{
			label:    DesignerUIUX,
			profile:  Profile{Mean: [FeatureCount]float64{45, 45, 70, 90, 35, 92, 55, 70, 15}, Variance: defaultVariance},
			keywords: []string{"design", "ui", "ux", "graphic", "art", "creative", "illustration", "figma", "wireframe"},
			roadmap: []string{
				"Typography, color and design systems fundamentals",
				"Figma (auto-layout, components, prototypes)",
				"Redesign 3-4 apps/sites; write case studies",
				"Accessibility and usability testing basics",
				"Portfolio site plus Behance/Dribbble presence",
			},
		},
		{
			label:    EntrepreneurManager,
			profile:  Profile{Mean: [FeatureCount]float64{65, 55, 75, 60, 45, 55, 92, 85, 15}, Variance: defaultVariance},
			keywords: []string{"startup", "business", "entrepreneur", "management", "team", "lead", "pitch", "mvp", "marketing"},
			roadmap: []string{
				"Validate 1-2 ideas with 10-20 real users",
				"Learn finance, marketing and product strategy basics",
				"Build an MVP (no-code is fine); measure usage",
				"Join an incubator or find mentors; iterate the pitch",
				"Plan hiring and ops; document processes early",
			},
		},
		{
			label:    TeacherAcademic,
			profile:  Profile{Mean: [FeatureCount]float64{60, 60, 92, 55, 35, 45, 75, 85, 15}, Variance: defaultVariance},
			keywords: []string{"teach", "mentor", "training", "education", "academy", "learn", "lesson", "syllabus"},
			roadmap: []string{
				"Subject depth plus pedagogy basics",
				"Design 5 lesson plans with outcomes",
				"Record micro-lessons; collect feedback",
				"Tutor/TA experience; assessment design",
				"Share notes and videos; build a teacher brand",
			},
		},
		{
			label:    ContentCreatorMedia,
			profile:  Profile{Mean: [FeatureCount]float64{45, 45, 85, 75, 35, 70, 65, 92, 15}, Variance: defaultVariance},
			keywords: []string{"content", "writer", "blog", "video", "media", "social", "story", "editor", "script"},
			roadmap: []string{
				"Pick a niche; publish twice a week",
				"Storytelling and editing; hook-based scripting",
				"Learn analytics and thumbnail/caption craft",
				"Collaborate with 3 creators; cross-promote",
				"Map monetization (sponsorships/affiliates)",
			},
		},
	}
}
