// Package names produces realistic names and text for workspace entities
// from curated word pools.
package names

import (
	"fmt"
	"strings"

	"github.com/SyedTasneemKousar/asana/internal/dist"
)

// TextSource produces free text for a prompt. Implementations may fail or
// return empty output; callers fall back to templates when they do.
type TextSource interface {
	Generate(prompt string) (string, error)
}

// Text resolves a prompt through src, falling back to fallback when src is
// nil, errors, or returns an empty string. It never fails.
func Text(src TextSource, prompt, fallback string) string {
	if src == nil {
		return fallback
	}
	out, err := src.Generate(prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return out
}

// domainReplacer shortens corporate suffixes when deriving a domain.
var domainReplacer = strings.NewReplacer(
	"technologies", "tech",
	"systems", "sys",
	"solutions", "sol",
	"software", "soft",
	"platforms", "plat",
	"inc", "",
	"corp", "",
	"ltd", "",
)

// Generator draws names from the word pools using an explicit random
// source.
type Generator struct {
	s   *dist.Sampler
	src TextSource
}

// New returns a Generator backed by the given sampler. src may be nil, in
// which case all text comes from templates.
func New(s *dist.Sampler, src TextSource) *Generator {
	return &Generator{s: s, src: src}
}

// Company picks a company name from the pool.
func (g *Generator) Company() string {
	return g.s.Pick(companyNames)
}

// Domain derives an email domain from a company name.
func (g *Generator) Domain(company string) string {
	base := strings.ToLower(company)
	base = strings.ReplaceAll(base, " ", "")
	base = domainReplacer.Replace(base)
	tld := g.s.Pick([]string{"com", "io", "co", "tech"})
	return base + "." + tld
}

// Person picks a first and last name.
func (g *Generator) Person() (first, last string) {
	return g.s.Pick(firstNames), g.s.Pick(lastNames)
}

// Email builds an address from a name using observed enterprise patterns:
// first.last 60%, firstlast 20%, f.last 10%, first.l 5%, first_last 5%.
// Apostrophes and spaces are stripped.
func (g *Generator) Email(first, last, domain string) string {
	f := strings.ToLower(first)
	l := strings.ToLower(last)

	var local string
	switch r := g.s.Float64(); {
	case r < 0.60:
		local = f + "." + l
	case r < 0.80:
		local = f + l
	case r < 0.90:
		local = f[:1] + "." + l
	case r < 0.95:
		local = f + "." + l[:1]
	default:
		local = f + "_" + l
	}

	email := local + "@" + domain
	email = strings.ReplaceAll(email, "'", "")
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// SuffixedEmail is the last-resort unique address when the patterned
// candidates keep colliding.
func (g *Generator) SuffixedEmail(first, last, domain string) string {
	f := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(first, "'", ""), " ", ""))
	l := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(last, "'", ""), " ", ""))
	return fmt.Sprintf("%s.%s.%d@%s", f, l, g.s.IntRange(1000, 9999), domain)
}

// ProjectName renders a type-specific template. counter is the per-type
// sequence number used by numbered templates.
func (g *Generator) ProjectName(projectType string, counter int) string {
	templates, ok := projectNameTemplates[projectType]
	if !ok {
		templates = []string{"Project {n}"}
	}
	t := g.s.Pick(templates)
	r := strings.NewReplacer(
		"{n}", fmt.Sprintf("%d", counter),
		"{month}", g.s.Pick(months),
		"{year}", "2024",
		"{quarter}", g.s.Pick(quarters),
	)
	return r.Replace(t)
}

// TaskName produces a task name, asking the text source first and falling
// back to type-specific templates.
func (g *Generator) TaskName(projectType string) string {
	prompt := fmt.Sprintf("Generate a short, realistic task name for a %s project.",
		strings.ReplaceAll(projectType, "_", " "))
	return Text(g.src, prompt, g.fallbackTaskName(projectType))
}

func (g *Generator) fallbackTaskName(projectType string) string {
	templates, ok := taskNameTemplates[projectType]
	if !ok {
		templates = []string{"Complete {task}"}
	}
	t := g.s.Pick(templates)
	r := strings.NewReplacer(
		"{feature}", g.s.Pick(taskFeatures),
		"{component}", g.s.Pick(taskComponents),
		"{module}", g.s.Pick(taskComponents),
		"{issue}", "performance issue",
		"{problem}", "data sync",
		"{vulnerability}", "security",
		"{scenario}", "login",
		"{content}", "blog post",
		"{campaign}", "Q1 launch",
		"{asset}", "landing page",
		"{content_type}", "email",
		"{activity}", "social posts",
		"{metric}", "campaign performance",
		"{process}", "onboarding",
		"{policy}", "security policy",
		"{request}", "access request",
		"{system}", "billing",
		"{improvement}", "workflow",
		"{element}", "user interface",
		"{part}", "component",
		"{task}", "task",
	)
	return r.Replace(t)
}

// TaskDescription returns nil 20% of the time, a short description 50%,
// and a detailed one 30%.
func (g *Generator) TaskDescription(taskName, projectType string) *string {
	r := g.s.Float64()
	if r < 0.20 {
		return nil
	}
	var desc string
	if r < 0.70 {
		prompt := fmt.Sprintf("Generate a brief 1-2 sentence description for this task: %s (project type: %s).",
			taskName, projectType)
		desc = Text(g.src, prompt, "Task: "+taskName)
		if len(desc) > 200 {
			desc = desc[:200]
		}
	} else {
		prompt := fmt.Sprintf("Generate a detailed description with context and acceptance criteria for this task: %s (project type: %s).",
			taskName, projectType)
		desc = Text(g.src, prompt, fmt.Sprintf("Task: %s. Includes requirements gathering, implementation, and verification.", taskName))
		if len(desc) > 500 {
			desc = desc[:500]
		}
	}
	return &desc
}

// SubtaskName renders one of the subtask templates.
func (g *Generator) SubtaskName() string {
	t := g.s.Pick(subtaskTemplates)
	r := strings.NewReplacer(
		"{component}", g.s.Pick(subtaskComponents),
		"{feature}", g.s.Pick(subtaskFeatures),
	)
	return r.Replace(t)
}

// CommentText produces a comment body. 70% of comments come straight from
// templates; the rest go through the text source with a template fallback.
func (g *Generator) CommentText(taskName string, completed bool) string {
	if g.s.Float64() < 0.70 {
		return g.s.Pick(commentTemplates)
	}
	kind := "progress update"
	if completed {
		kind = "completion update"
	}
	prompt := fmt.Sprintf("Generate a brief, realistic comment (1-2 sentences) for a task management system. Task: %s. Comment type: %s.",
		taskName, kind)
	out := Text(g.src, prompt, g.s.Pick(commentTemplates))
	if len(out) > 500 {
		out = out[:500]
	}
	return out
}

// ProjectDescription returns a short blurb for a project type.
func (g *Generator) ProjectDescription(projectType string) string {
	return "Project for " + strings.ReplaceAll(projectType, "_", " ")
}
