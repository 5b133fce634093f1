package transform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"jobfeed-engine/internal/domain"
	"jobfeed-engine/internal/store"
)

const OutputPath = "transformed_jobs_data_standardized.json"

// Run standardizes whichever raw source blobs exist in the bucket into the
// common schema, merges them, and uploads the combined artifact. Returns the
// number of standardized records.
func Run(ctx context.Context, bucket string, st store.ObjectStore) (int, error) {
	var combined []domain.StandardJob

	for _, src := range []struct {
		name string
		path string
		fn   func([]byte) ([]domain.StandardJob, error)
	}{
		{"adzuna", "adzuna_jobs.json", standardizeAdzuna},
		{"jooble", "jooble_jobs.json", standardizeJooble},
		{"muse", "muse_jobs.json", standardizeMuse},
	} {
		content, _, err := st.Get(ctx, bucket, src.path)
		if errors.Is(err, store.ErrNotExist) {
			log.Printf("[transform] %s not found in bucket %s, skipping", src.path, bucket)
			continue
		}
		if err != nil {
			log.Printf("[transform] downloading %s: %v", src.path, err)
			continue
		}

		jobs, err := src.fn(content)
		if err != nil {
			log.Printf("[transform] standardizing %s: %v", src.name, err)
			continue
		}
		log.Printf("[transform] %s records: %d", src.name, len(jobs))
		combined = append(combined, jobs...)
	}

	if len(combined) == 0 {
		return 0, errors.New("no data found in source files")
	}
	log.Printf("[transform] combined %d total job records", len(combined))

	b, err := json.MarshalIndent(combined, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode combined records: %w", err)
	}
	if err := st.Put(ctx, bucket, OutputPath, b, "application/json"); err != nil {
		return 0, err
	}

	// Verify the upload actually landed before declaring success.
	ok, err := st.Exists(ctx, bucket, OutputPath)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("upload verification failed for %s", OutputPath)
	}
	log.Printf("[transform] result saved to %s/%s", bucket, OutputPath)

	return len(combined), nil
}

type adzunaJob struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
	Created     string `json:"created"`
	Category    struct {
		Label string `json:"label"`
	} `json:"category"`
	ContractTime string `json:"contract_time"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	SalaryMin *float64 `json:"salary_min"`
	SalaryMax *float64 `json:"salary_max"`
}

func standardizeAdzuna(raw []byte) ([]domain.StandardJob, error) {
	var in []adzunaJob
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}

	out := make([]domain.StandardJob, 0, len(in))
	for _, j := range in {
		out = append(out, domain.StandardJob{
			JobTitle:       j.Title,
			JobDescription: StripHTML(j.Description),
			JobURL:         j.RedirectURL,
			PostedDate:     j.Created,
			JobCategory:    j.Category.Label,
			JobType:        j.ContractTime,
			CompanyName:    j.Company.DisplayName,
			Salary:         combineSalary(j.SalaryMin, j.SalaryMax),
			Source:         "adzuna",
		})
	}
	return out, nil
}

// combineSalary renders min/max into a single display string: both bounds
// give a range, a single bound stands alone, neither gives "".
func combineSalary(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%.0f - $%.0f", *min, *max)
	case min != nil:
		return fmt.Sprintf("$%.0f", *min)
	case max != nil:
		return fmt.Sprintf("$%.0f", *max)
	default:
		return ""
	}
}

type joobleJob struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Updated string `json:"updated"`
	Type    string `json:"type"`
	Company string `json:"company"`
	Salary  string `json:"salary"`
}

func standardizeJooble(raw []byte) ([]domain.StandardJob, error) {
	var in []joobleJob
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}

	out := make([]domain.StandardJob, 0, len(in))
	for _, j := range in {
		out = append(out, domain.StandardJob{
			JobTitle:       j.Title,
			JobDescription: StripHTML(j.Snippet),
			JobURL:         j.Link,
			PostedDate:     j.Updated,
			JobCategory:    j.Type,
			JobType:        j.Type,
			CompanyName:    j.Company,
			Salary:         j.Salary,
			Source:         "jooble",
		})
	}
	return out, nil
}

type museJob struct {
	Name            string `json:"name"`
	Contents        string `json:"contents"`
	PublicationDate string `json:"publication_date"`
	Refs            struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
}

func standardizeMuse(raw []byte) ([]domain.StandardJob, error) {
	var in []museJob
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}

	out := make([]domain.StandardJob, 0, len(in))
	for _, j := range in {
		category := ""
		if len(j.Categories) > 0 {
			category = j.Categories[0].Name
		}
		out = append(out, domain.StandardJob{
			JobTitle:       j.Name,
			JobDescription: StripHTML(j.Contents),
			JobURL:         j.Refs.LandingPage,
			PostedDate:     j.PublicationDate,
			JobCategory:    category,
			CompanyName:    j.Company.Name,
			Source:         "muse",
		})
	}
	return out, nil
}
