package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

const helpText = `I can help with:
- Roadmaps (e.g., 'roadmap for data scientist', 'how to become a cloud engineer')
- Salary (e.g., 'salary for software engineer')
- Courses (e.g., 'courses for ui/ux')
- Trending careers (e.g., 'which careers are in demand?')
- Comparing roles (e.g., 'compare data scientist vs software engineer')
- Careers for a skill (e.g., 'jobs for strong math')`

// DefaultIntents returns the built-in intents in matching order.
func DefaultIntents() []Intent {
	return []Intent{
		roadmapIntent{},
		&keywordIntent{
			name:     "salary",
			keywords: []string{"salary", "pay", "package"},
			reply:    salaryReply,
		},
		cannedIntent("trending", []string{"trending", "high demand", "popular", "in demand"}, trendingText, true),
		cannedIntent("short_courses", []string{"short course", "quick course", "certificate"}, shortCoursesText, true),
		&keywordIntent{
			name:     "courses",
			keywords: []string{"course", "learn", "study", "syllabus"},
			reply:    coursesReply,
		},
		&patternIntent{
			name:    "greeting",
			pattern: regexp.MustCompile(`\b(hi|hai|hello|hey)\b`),
			reply:   constReply(greetingText, false),
		},
		cannedIntent("government", []string{"government", "civil services", "upsc", "psc"}, governmentText, false),
		cannedIntent("future_of_ai", []string{"future of ai", "ai jobs", "scope of ai"}, futureOfAIText, true),
		compareIntent{},
		skillIntent("math_careers", `(job|career).*(math|statistics)`,
			"Careers for strong math: Data Scientist, Quant Analyst, Engineer, Actuary."),
		skillIntent("design_careers", `(job|career).*(design|ui|ux|creative)`,
			"Design paths: UI/UX Designer, Product Designer, Motion Designer, Architect."),
		skillIntent("coding_careers", `(job|career).*(coding|programming|software|developer)`,
			"Coding-heavy roles: Software Engineer, Backend/Frontend Dev, DevOps, Cloud Engineer."),
		skillIntent("communication_careers", `(job|career).*(communication|english|writing|public speaking)`,
			"Strong communication fits: Product Manager, Marketing, PR, Teaching, Content Creator."),
		skillIntent("leadership_careers", `(job|career).*(leadership|management)`,
			"Leadership paths: Product Manager, Project Manager, Entrepreneur/Manager, Team Lead."),
	}
}

type replyFunc func(ctx context.Context, deps Deps, req *Request) (string, error)

func constReply(text string, withHint bool) replyFunc {
	return func(_ context.Context, _ Deps, req *Request) (string, error) {
		if withHint {
			return text + req.Hint, nil
		}
		return text, nil
	}
}

type keywordIntent struct {
	name     string
	keywords []string
	reply    replyFunc
}

func (i *keywordIntent) Name() string { return i.name }

func (i *keywordIntent) Match(msg string) bool {
	return containsAny(msg, i.keywords...)
}

func (i *keywordIntent) Reply(ctx context.Context, deps Deps, req *Request) (string, error) {
	return i.reply(ctx, deps, req)
}

func cannedIntent(name string, keywords []string, text string, withHint bool) *keywordIntent {
	return &keywordIntent{name: name, keywords: keywords, reply: constReply(text, withHint)}
}

type patternIntent struct {
	name    string
	pattern *regexp.Regexp
	reply   replyFunc
}

func (i *patternIntent) Name() string { return i.name }

func (i *patternIntent) Match(msg string) bool { return i.pattern.MatchString(msg) }

func (i *patternIntent) Reply(ctx context.Context, deps Deps, req *Request) (string, error) {
	return i.reply(ctx, deps, req)
}

func skillIntent(name, pattern, text string) *patternIntent {
	return &patternIntent{name: name, pattern: regexp.MustCompile(pattern), reply: constReply(text, true)}
}

var roadmapTriggers = []string{"roadmap", "how to become", "steps for", "path to", "career path for", "plan for"}

type roadmapIntent struct{}

func (roadmapIntent) Name() string { return "roadmap" }

func (roadmapIntent) Match(msg string) bool { return containsAny(msg, roadmapTriggers...) }

func (roadmapIntent) Reply(_ context.Context, deps Deps, req *Request) (string, error) {
	targets := ExtractCareers(req.Message)
	if len(targets) == 0 {
		return "Tell me which role you want a roadmap for (e.g., 'roadmap for data scientist' or 'steps for ui/ux designer').", nil
	}

	primary := targets[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Roadmap for %s:", primary)
	for i, step := range deps.Catalog.Roadmap(primary) {
		fmt.Fprintf(&b, "\n%d. %s", i+1, step)
	}
	if len(targets) > 1 {
		fmt.Fprintf(&b, "\n\nAlso detected: %s. Ask 'roadmap for <role>' to see those.", strings.Join(targets[1:], ", "))
	}
	b.WriteString(req.Hint)
	return b.String(), nil
}

var defaultSalaryTargets = []string{"Software Engineer", "Data Scientist", "Doctor / Healthcare"}

func salaryReply(_ context.Context, deps Deps, req *Request) (string, error) {
	targets := ExtractCareers(req.Message)
	if len(targets) == 0 {
		targets = defaultSalaryTargets
	}

	lines := make([]string, 0, len(targets))
	for _, info := range deps.Insights.Lookup(targets) {
		lines = append(lines, fmt.Sprintf("%s: %s", info.Name, info.Salary))
	}
	return "Here are salary insights:\n" + strings.Join(lines, "\n") + req.Hint, nil
}

func coursesReply(_ context.Context, deps Deps, req *Request) (string, error) {
	msg := req.Message
	targets := ExtractCareers(msg)
	if len(targets) == 0 {
		switch {
		case containsAny(msg, "ui", "ux", "design"):
			targets = []string{"Designer / UI-UX"}
		case containsAny(msg, "data", "ml", "machine learning"):
			targets = []string{"Data Scientist"}
		case containsAny(msg, "software", "coding", "programming", "developer"):
			targets = []string{"Software Engineer"}
		default:
			targets = []string{"Software Engineer", "Designer / UI-UX"}
		}
	}

	var parts []string
	for _, info := range deps.Insights.Lookup(targets) {
		if len(info.Courses) == 0 {
			continue
		}
		titles := make([]string, len(info.Courses))
		for i, c := range info.Courses {
			titles[i] = c.Title
		}
		parts = append(parts, fmt.Sprintf("%s: %s", info.Name, strings.Join(titles, ", ")))
	}

	body := "No courses found."
	if len(parts) > 0 {
		body = strings.Join(parts, "\n")
	}
	return "You can explore:\n" + body + req.Hint, nil
}

var compareRoles = []string{"data scientist", "software engineer", "ui/ux", "lawyer", "doctor", "cloud", "cybersecurity"}

type compareIntent struct{}

func (compareIntent) Name() string { return "compare" }

func (compareIntent) Match(msg string) bool {
	return strings.Contains(msg, "compare") || (strings.Contains(msg, "vs") && containsAny(msg, compareRoles...))
}

func (compareIntent) Reply(_ context.Context, _ Deps, req *Request) (string, error) {
	return compareText + req.Hint, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const (
	greetingText = "Welcome! I'm here to support your career journey. Ask me about roadmaps, salaries or courses."

	trendingText = `Careers in high demand right now:
- Data Scientist / AI Engineer
- Cybersecurity Specialist
- Cloud Engineer
- Doctor / Healthcare
- UI/UX Designer`

	shortCoursesText = `Short career-boosting courses:
- Google Data Analytics (Coursera, ~6 months)
- AWS Cloud Practitioner (Udemy, ~1 month)
- Google UX Design (Coursera, ~4-6 months)
- Digital Marketing Basics (edX, ~2 months)`

	governmentText = `Government job paths:
- Civil Services (IAS, IPS, IFS)
- PSU roles (engineers, management)
- Teaching (UGC NET, schools)
- Healthcare (doctors in govt hospitals)
Path: competitive exams like UPSC, SSC, state PSC, etc.`

	futureOfAIText = `Future AI career tracks:
- AI Researcher (labs, academia)
- ML Engineer (applied AI)
- Robotics Engineer
- AI Ethics & Policy roles
Outlook: very high demand in the next 5-10 years.`

	compareText = `Data Scientist vs Software Engineer:

- Data Scientist: focus on ML/AI, statistics, data storytelling.
  Typical salary: ₹8L–₹30L (India), $100k–$200k (US)
- Software Engineer: build scalable apps, systems, tools.
  Typical salary: ₹6L–₹24L (India), $80k–$180k (US)

Enjoy math, data and ML? Choose Data Scientist.
Enjoy building products and systems? Choose Software Engineer.`
)
