package dto

type PlatformStats struct {
	Users        int64 `json:"users"`
	JobSeekers   int64 `json:"job_seekers"`
	Businesses   int64 `json:"businesses"`
	Freelancers  int64 `json:"freelancers"`
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
}
