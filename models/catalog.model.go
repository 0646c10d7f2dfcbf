package models

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Instructor describes who teaches a course
type Instructor struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Lesson is a single unit of curriculum. Order within its section is significant.
type Lesson struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"` // minutes
	VideoURL  string   `json:"video_url"`
	Preview   bool     `json:"preview,omitempty"`
	Resources []string `json:"resources,omitempty"`
}

// Section groups lessons. Order within the course defines curriculum sequence.
type Section struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Duration int      `json:"duration"` // minutes, sum of its lessons
	Lessons  []Lesson `json:"lessons"`
}

// Course is read-only reference data loaded from the catalog
type Course struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Level       string     `json:"level"`
	Price       float64    `json:"price"`
	Rating      float64    `json:"rating"`
	Enrolled    int        `json:"enrolled"`
	Duration    int        `json:"duration"` // minutes
	Instructor  Instructor `json:"instructor"`
	Sections    []Section  `json:"sections,omitempty"`
}

// TotalLessons counts lessons across all sections
func (c *Course) TotalLessons() int {
	total := 0
	for _, section := range c.Sections {
		total += len(section.Lessons)
	}
	return total
}

// CourseSnapshot is a denormalized copy of course fields taken at the time of
// an action (add to cart, enroll). Later catalog changes must not leak into it.
type CourseSnapshot struct {
	CourseID    uint       `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Level       string     `json:"level"`
	Price       float64    `json:"price"`
	Rating      float64    `json:"rating"`
	Enrolled    int        `json:"enrolled"`
	Duration    int        `json:"duration"`
	Instructor  Instructor `json:"instructor"`
}

// Snapshot copies the display fields of a course
func (c *Course) Snapshot() CourseSnapshot {
	return CourseSnapshot{
		CourseID:    c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Level:       c.Level,
		Price:       c.Price,
		Rating:      c.Rating,
		Enrolled:    c.Enrolled,
		Duration:    c.Duration,
		Instructor:  c.Instructor,
	}
}

// Review is a student review attached to a course
type Review struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	Helpful    int    `json:"helpful"`
}

// CourseStatistics are aggregate numbers shown on a course detail page
type CourseStatistics struct {
	TotalStudents  int     `json:"total_students"`
	CompletionRate int     `json:"completion_rate"`
	AverageRating  float64 `json:"average_rating"`
	TotalReviews   int     `json:"total_reviews"`
	LastUpdated    string  `json:"last_updated"`
}
