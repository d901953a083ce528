package model

import "time"

// User represents an account on the platform.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	UserType       string    `json:"user_type,omitempty"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	CoverImage     string    `json:"cover_image,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	FollowersCount int       `json:"followers_count,omitempty"`
	FollowingCount int       `json:"following_count,omitempty"`
	CreatedDate    time.Time `json:"created_date"`
}

// Post is a feed publication. Author is resolved at read time from
// AuthorEmail and is never persisted.
type Post struct {
	ID            string    `json:"id"`
	AuthorEmail   string    `json:"author_email"`
	Content       string    `json:"content"`
	PostType      string    `json:"post_type,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	MediaURLs     []string  `json:"media_urls,omitempty"`
	Visibility    string    `json:"visibility,omitempty"`
	LikesCount    int       `json:"likes_count,omitempty"`
	CommentsCount int       `json:"comments_count,omitempty"`
	SharesCount   int       `json:"shares_count,omitempty"`
	CreatedDate   time.Time `json:"created_date"`

	Author *User `json:"author,omitempty"`
}

// Job is a catalog record on the job board.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	JobType         string    `json:"job_type,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	WorkMode        string    `json:"work_mode,omitempty"`
	SalaryRange     string    `json:"salary_range,omitempty"`
	Requirements    []string  `json:"requirements,omitempty"`
	Benefits        []string  `json:"benefits,omitempty"`
	RecruiterEmail  string    `json:"recruiter_email,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
}

// Course is a catalog record in the course listing. OriginalPrice is a
// derived field set only by the premium pricing transform.
type Course struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	InstructorName string    `json:"instructor_name,omitempty"`
	Category       string    `json:"category,omitempty"`
	Level          string    `json:"level,omitempty"`
	Duration       string    `json:"duration,omitempty"`
	Price          float64   `json:"price"`
	OriginalPrice  float64   `json:"original_price,omitempty"`
	Rating         float64   `json:"rating,omitempty"`
	StudentsCount  int       `json:"students_count,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedDate    time.Time `json:"created_date"`
}

// ChatMessage is a direct message between two users.
type ChatMessage struct {
	ID            string    `json:"id"`
	SenderEmail   string    `json:"sender_email"`
	ReceiverEmail string    `json:"receiver_email"`
	Message       string    `json:"message"`
	Read          bool      `json:"read"`
	CreatedDate   time.Time `json:"created_date"`
}

// Follow is a directed edge between two users. The backend keeps at
// most one edge per ordered (follower, following) pair.
type Follow struct {
	ID             string    `json:"id"`
	FollowerEmail  string    `json:"follower_email"`
	FollowingEmail string    `json:"following_email"`
	CreatedDate    time.Time `json:"created_date"`
}
