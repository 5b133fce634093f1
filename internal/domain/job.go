package domain

// JobPosting is a single job parsed out of a Hacker News hiring-thread
// comment. Required fields are always set; the extracted fields are filled in
// on a best-effort basis and simply absent from the JSON when no heuristic
// matched.
type JobPosting struct {
	JobID       string `json:"job_id"`      // "hn-<comment id>"
	PostedDate  string `json:"posted_date"` // YYYY-MM-DD
	Author      string `json:"author"`
	Description string `json:"description"`
	SourceAPI   string `json:"source_api"`
	SourceURL   string `json:"source_url"`

	Company        string   `json:"company,omitempty"`
	Title          string   `json:"title,omitempty"`
	Location       string   `json:"location,omitempty"`
	Remote         bool     `json:"remote,omitempty"`
	EmploymentType string   `json:"employment_type"` // full-time|part-time|contract|internship
	SkillsRequired []string `json:"skills_required,omitempty"`
	SalaryInfo     string   `json:"salary_info,omitempty"`
}
