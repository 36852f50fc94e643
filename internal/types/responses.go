package types

import "time"

// Response shapes flatten the entity graph for the transport layer:
// parent display fields ride alongside the foreign ids. Purely derived,
// no invariants of their own.

type UserResponse struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Role            Role                 `json:"role"`
	Bio             string               `json:"bio"`
	AvatarURL       string               `json:"avatar_url"`
	CoursesTaught   []CourseResponse     `json:"courses_taught,omitempty"`
	Enrollments     []EnrollmentResponse `json:"enrollments,omitempty"`
	Submissions     []SubmissionResponse `json:"submissions,omitempty"`
	QuizSubmissions []QuizSubmissionResponse `json:"quiz_submissions,omitempty"`
	CourseReviews   []CourseReviewResponse   `json:"course_reviews,omitempty"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CourseResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryID   *uint     `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	TeacherID    uint      `json:"teacher_id"`
	TeacherName  string    `json:"teacher_name,omitempty"`
	Duration     int       `json:"duration"`
	StartDate    time.Time `json:"start_date"`
}

type ModuleResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	OrderIndex  int    `json:"order_index"`
	Description string `json:"description"`
	CourseID    uint   `json:"course_id"`
	CourseTitle string `json:"course_title,omitempty"`
}

type LessonResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	VideoURL    string `json:"video_url"`
	ModuleID    uint   `json:"module_id"`
	ModuleTitle string `json:"module_title,omitempty"`
}

type AssignmentResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	MaxScore    int        `json:"max_score"`
	LessonID    uint       `json:"lesson_id"`
	LessonTitle string     `json:"lesson_title,omitempty"`
}

type SubmissionResponse struct {
	ID              uint      `json:"id"`
	SubmittedAt     time.Time `json:"submitted_at"`
	Content         string    `json:"content"`
	Score           *int      `json:"score"`
	Feedback        *string   `json:"feedback"`
	AssignmentID    uint      `json:"assignment_id"`
	AssignmentTitle string    `json:"assignment_title,omitempty"`
	StudentID       uint      `json:"student_id"`
	StudentName     string    `json:"student_name,omitempty"`
}

type QuizResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	TimeLimit   int    `json:"time_limit"`
	ModuleID    *uint  `json:"module_id,omitempty"`
	ModuleTitle string `json:"module_title,omitempty"`
}

type QuestionResponse struct {
	ID     uint         `json:"id"`
	Text   string       `json:"text"`
	Type   QuestionType `json:"type"`
	QuizID uint         `json:"quiz_id"`
}

type AnswerOptionResponse struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID uint   `json:"question_id"`
}

type QuizSubmissionResponse struct {
	ID          uint      `json:"id"`
	Score       int       `json:"score"`
	TakenAt     time.Time `json:"taken_at"`
	QuizID      uint      `json:"quiz_id"`
	QuizTitle   string    `json:"quiz_title,omitempty"`
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
}

type EnrollmentResponse struct {
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	CourseID    uint      `json:"course_id"`
	CourseTitle string    `json:"course_title,omitempty"`
	EnrollDate  time.Time `json:"enroll_date"`
	Status      string    `json:"status"`
}

type CourseReviewResponse struct {
	ID          uint      `json:"id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	CourseID    uint      `json:"course_id"`
	CourseTitle string    `json:"course_title,omitempty"`
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
