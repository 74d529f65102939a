package domain

import "time"

// Link is a structured reference extracted from authored rich text and
// stored alongside the HTML blob.
type Link struct {
	Text string `json:"text" firestore:"text"`
	Href string `json:"href" firestore:"href"`
}

// NewsDocument is a single news or event entry as persisted in the "news"
// collection. The ID is assigned by the document store on creation and is
// immutable afterwards.
type NewsDocument struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	ExcerptHTML LocalizedText `json:"excerpt"`
	ImageURL    string        `json:"image"`
	DateYMD     string        `json:"date"`
	CategoryKey string        `json:"category"`
	Featured    bool          `json:"featured"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	AuthorEmail string        `json:"authorEmail"`
}

// ProjectDocument is a single project entry as persisted in the "projects"
// collection. DateYMD and the DateStartYMD/DateEndYMD pair are mutually
// exclusive; the invariant is enforced at form-submit time.
type ProjectDocument struct {
	ID               string                 `json:"id"`
	Title            LocalizedText          `json:"title"`
	DescriptionHTML  LocalizedText          `json:"description"`
	DescriptionLinks map[Lang][]Link        `json:"descriptionLinks,omitempty"`
	ImageURL         string                 `json:"image"`
	GalleryURLs      []string               `json:"gallery,omitempty"`
	DateYMD          string                 `json:"date,omitempty"`
	DateStartYMD     string                 `json:"dateStart,omitempty"`
	DateEndYMD       string                 `json:"dateEnd,omitempty"`
	Location         LocalizedText          `json:"location"`
	YouTubeURLs      []string               `json:"youtubeUrls,omitempty"`
	Featured         bool                   `json:"featured"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
	AuthorEmail      string                 `json:"authorEmail"`
}

// BestDateYMD returns the date used for ordering project feeds: the single
// date when present, else the range end, else the range start.
func (p ProjectDocument) BestDateYMD() string {
	if p.DateYMD != "" {
		return p.DateYMD
	}
	if p.DateEndYMD != "" {
		return p.DateEndYMD
	}
	return p.DateStartYMD
}

// ContactMessage is the write-only payload logged by the public contact
// form. A parallel document in the "mail" collection triggers delivery.
type ContactMessage struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
