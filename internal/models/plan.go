package models

import "time"

type HobbyPlan struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Hobby     string    `json:"hobby"`
	Title     string    `json:"title"`
	Overview  string    `json:"overview"`
	PlanData  *PlanData `json:"plan_data"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanData is the structured plan blob stored in the plan_data jsonb column.
type PlanData struct {
	Hobby         string    `json:"hobby"`
	Title         string    `json:"title"`
	Overview      string    `json:"overview"`
	Experience    string    `json:"experience"`
	TimeAvailable string    `json:"timeAvailable"`
	Goal          string    `json:"goal,omitempty"`
	TotalDays     int       `json:"totalDays"`
	Days          []PlanDay `json:"days"`
}

type PlanDay struct {
	Day               int                `json:"day"`
	Title             string             `json:"title"`
	MainTask          string             `json:"mainTask"`
	Explanation       string             `json:"explanation"`
	HowTo             []string           `json:"howTo"`
	Checklist         []string           `json:"checklist"`
	Tips              []string           `json:"tips"`
	CommonMistakes    []string           `json:"commonMistakes"`
	MistakesToAvoid   []string           `json:"mistakesToAvoid,omitempty"`
	FreeResources     []Resource         `json:"freeResources"`
	AffiliateProducts []AffiliateProduct `json:"affiliateProducts"`
	YouTubeVideoID    string             `json:"youtubeVideoId,omitempty"`
	VideoTitle        string             `json:"videoTitle,omitempty"`
	EstimatedTime     string             `json:"estimatedTime"`
	SkillLevel        string             `json:"skillLevel"`
}

type Resource struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type AffiliateProduct struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Price string `json:"price,omitempty"`
}
