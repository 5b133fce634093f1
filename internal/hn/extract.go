package hn

import (
	"fmt"
	"regexp"
	"time"

	"jobfeed-engine/internal/domain"
	"jobfeed-engine/internal/scrape/util"
)

// Heuristic field extraction from free-form hiring comments. Each signal is
// independent and best-effort: no match means the field stays empty, and rule
// order within a chain is load-bearing (first match wins).

const roleKeywords = `engineer|developer|designer|manager|director|lead|architect|consultant|scientist|specialist`

var companyRe = regexp.MustCompile(`(?im)^([^|:]+)(?:\s*[|:]\s*|\s+is\s+hiring)`)

// Title chains, most specific first.
var titleRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hiring|for|hiring for|looking for)[^|:]*?([^|:,]*?(?:` + roleKeywords + `)[^|:,]*?)(?:at|\.|,|\||$)`),
	regexp.MustCompile(`(?i)(?:\||:)\s*([^|:,]*?(?:` + roleKeywords + `)[^|:,]*?)(?:at|\.|,|\||$)`),
}

// Location chains: work-mode tokens, then explicit labels, then "City, ST".
type locationRule struct {
	re    *regexp.Regexp
	whole bool // take the whole match instead of group 1
}

var locationRules = []locationRule{
	{re: regexp.MustCompile(`(?i)(?:REMOTE|ONSITE|HYBRID|RELOCATION)(?:\s*(?:/|,|\|)\s*(?:REMOTE|ONSITE|HYBRID|RELOCATION))*`), whole: true},
	{re: regexp.MustCompile(`(?i)(?:location|based in|located in|in)\s*:\s*([^.]{3,50}?)(?:\.|,|\||$)`)},
	{re: regexp.MustCompile(`(?i)(?:\s|^)([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2,})(?:\s|$|\.|\|)`)},
}

var (
	remoteRe     = regexp.MustCompile(`(?i)\bREMOTE\b`)
	internRe     = regexp.MustCompile(`(?i)\b(?:INTERN|INTERNSHIP)\b`)
	contractRe   = regexp.MustCompile(`(?i)\b(?:CONTRACT|CONTRACTOR|FREELANCE)\b`)
	partTimeRe   = regexp.MustCompile(`(?i)\b(?:PART[- ]TIME)\b`)
	skillsRe     = regexp.MustCompile(`(?i)\b(Python|JavaScript|JS|TypeScript|TS|Java|C\+\+|C#|Ruby|Go|Golang|Rust|PHP|Swift|Kotlin|SQL|React|Angular|Vue|Node\.js|Django|Flask|Spring|TensorFlow|PyTorch|AWS|GCP|Azure|Docker|Kubernetes|K8s|Terraform)\b`)
	salaryRe     = regexp.MustCompile(`(?i)(?:salary|compensation|pay)(?:\s+is|\s*:\s*)?\s+\$?((?:\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)(?:\s*-\s*\$?(?:\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?))?(?:\s*[kK]\b)?)`)
)

// ParseJobComment turns a raw comment into a JobPosting. Comments without a
// text body return nil: edited-away and system comments are common and not
// worth logging.
func ParseJobComment(cm RawComment) *domain.JobPosting {
	if cm.Text == "" {
		return nil
	}

	job := &domain.JobPosting{
		JobID:       fmt.Sprintf("hn-%d", cm.ID),
		PostedDate:  time.Unix(cm.Time, 0).UTC().Format("2006-01-02"),
		Author:      cm.By,
		Description: cm.Text,
		SourceAPI:   "hackernews",
		SourceURL:   fmt.Sprintf("https://news.ycombinator.com/item?id=%d", cm.ID),
	}
	extractDetails(job, cm.Text)
	return job
}

func extractDetails(job *domain.JobPosting, text string) {
	// Company: text up to the first | or : separator, or "X is hiring".
	if m := companyRe.FindStringSubmatch(text); m != nil {
		job.Company = util.CleanText(m[1])
	}

	for _, re := range titleRules {
		if m := re.FindStringSubmatch(text); m != nil {
			job.Title = util.CleanText(m[1])
			break
		}
	}

	for _, rule := range locationRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if rule.whole {
			job.Location = util.CleanText(m[0])
		} else {
			job.Location = util.CleanText(m[1])
		}
		break
	}

	// Remote flag is independent of whichever location rule fired.
	if remoteRe.MatchString(text) {
		if job.Location == "" {
			job.Location = "Remote"
		}
		job.Remote = true
	}

	// Mutually exclusive by priority; full-time is the fallback.
	switch {
	case internRe.MatchString(text):
		job.EmploymentType = "internship"
	case contractRe.MatchString(text):
		job.EmploymentType = "contract"
	case partTimeRe.MatchString(text):
		job.EmploymentType = "part-time"
	default:
		job.EmploymentType = "full-time"
	}

	if matches := skillsRe.FindAllString(text, -1); len(matches) > 0 {
		seen := map[string]bool{}
		for _, sk := range matches {
			if seen[sk] {
				continue
			}
			seen[sk] = true
			job.SkillsRequired = append(job.SkillsRequired, sk)
		}
	}

	if m := salaryRe.FindStringSubmatch(text); m != nil {
		job.SalaryInfo = util.CleanText(m[1])
	}
}
