package domain

// StandardJob is the common schema every REST source is mapped onto by the
// transform step. Field names mirror the standardized output artifact.
type StandardJob struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url"`
	PostedDate     string `json:"posted_date"`
	JobCategory    string `json:"job_category"`
	JobType        string `json:"job_type"`
	CompanyName    string `json:"company_name"`
	Salary         string `json:"salary"`
	Source         string `json:"source"`
}
