package services

import (
	"github.com/openedu/institution-backend/internal/types"
)

// Projection helpers flatten entities into response shapes. Display
// fields for parents are filled only when the association was preloaded.

func toCourseResponse(course *types.Course) types.CourseResponse {
	out := types.CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		CategoryID:  course.CategoryID,
		TeacherID:   course.TeacherID,
		Duration:    course.Duration,
		StartDate:   course.StartDate,
	}
	if course.Category != nil {
		out.CategoryName = course.Category.Name
	}
	if course.Teacher != nil {
		out.TeacherName = course.Teacher.Name
	}
	return out
}

func toCourseResponses(courses []*types.Course) []types.CourseResponse {
	out := make([]types.CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseResponse(course))
	}
	return out
}

func toModuleResponse(module *types.Module) types.ModuleResponse {
	out := types.ModuleResponse{
		ID:          module.ID,
		Title:       module.Title,
		OrderIndex:  module.OrderIndex,
		Description: module.Description,
		CourseID:    module.CourseID,
	}
	if module.Course != nil {
		out.CourseTitle = module.Course.Title
	}
	return out
}

func toModuleResponses(modules []*types.Module) []types.ModuleResponse {
	out := make([]types.ModuleResponse, 0, len(modules))
	for _, module := range modules {
		out = append(out, toModuleResponse(module))
	}
	return out
}

func toLessonResponse(lesson *types.Lesson) types.LessonResponse {
	out := types.LessonResponse{
		ID:       lesson.ID,
		Title:    lesson.Title,
		Content:  lesson.Content,
		VideoURL: lesson.VideoURL,
		ModuleID: lesson.ModuleID,
	}
	if lesson.Module != nil {
		out.ModuleTitle = lesson.Module.Title
	}
	return out
}

func toLessonResponses(lessons []*types.Lesson) []types.LessonResponse {
	out := make([]types.LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		out = append(out, toLessonResponse(lesson))
	}
	return out
}

func toAssignmentResponse(assignment *types.Assignment) types.AssignmentResponse {
	out := types.AssignmentResponse{
		ID:          assignment.ID,
		Title:       assignment.Title,
		Description: assignment.Description,
		DueDate:     assignment.DueDate,
		MaxScore:    assignment.MaxScore,
		LessonID:    assignment.LessonID,
	}
	if assignment.Lesson != nil {
		out.LessonTitle = assignment.Lesson.Title
	}
	return out
}

func toAssignmentResponses(assignments []*types.Assignment) []types.AssignmentResponse {
	out := make([]types.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		out = append(out, toAssignmentResponse(assignment))
	}
	return out
}

func toSubmissionResponse(submission *types.Submission) types.SubmissionResponse {
	out := types.SubmissionResponse{
		ID:           submission.ID,
		SubmittedAt:  submission.SubmittedAt,
		Content:      submission.Content,
		Score:        submission.Score,
		Feedback:     submission.Feedback,
		AssignmentID: submission.AssignmentID,
		StudentID:    submission.StudentID,
	}
	if submission.Assignment != nil {
		out.AssignmentTitle = submission.Assignment.Title
	}
	if submission.Student != nil {
		out.StudentName = submission.Student.Name
	}
	return out
}

func toSubmissionResponses(submissions []*types.Submission) []types.SubmissionResponse {
	out := make([]types.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		out = append(out, toSubmissionResponse(submission))
	}
	return out
}

func toQuizResponse(quiz *types.Quiz) types.QuizResponse {
	out := types.QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		TimeLimit: quiz.TimeLimit,
		ModuleID:  quiz.ModuleID,
	}
	if quiz.Module != nil {
		out.ModuleTitle = quiz.Module.Title
	}
	return out
}

func toQuestionResponse(question *types.Question) types.QuestionResponse {
	return types.QuestionResponse{
		ID:     question.ID,
		Text:   question.Text,
		Type:   question.Type,
		QuizID: question.QuizID,
	}
}

func toQuestionResponses(questions []*types.Question) []types.QuestionResponse {
	out := make([]types.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		out = append(out, toQuestionResponse(question))
	}
	return out
}

func toAnswerOptionResponse(option *types.AnswerOption) types.AnswerOptionResponse {
	return types.AnswerOptionResponse{
		ID:         option.ID,
		Text:       option.Text,
		IsCorrect:  option.IsCorrect,
		QuestionID: option.QuestionID,
	}
}

func toAnswerOptionResponses(options []*types.AnswerOption) []types.AnswerOptionResponse {
	out := make([]types.AnswerOptionResponse, 0, len(options))
	for _, option := range options {
		out = append(out, toAnswerOptionResponse(option))
	}
	return out
}

func toQuizSubmissionResponse(submission *types.QuizSubmission) types.QuizSubmissionResponse {
	out := types.QuizSubmissionResponse{
		ID:        submission.ID,
		Score:     submission.Score,
		TakenAt:   submission.TakenAt,
		QuizID:    submission.QuizID,
		StudentID: submission.StudentID,
	}
	if submission.Quiz != nil {
		out.QuizTitle = submission.Quiz.Title
	}
	if submission.Student != nil {
		out.StudentName = submission.Student.Name
	}
	return out
}

func toQuizSubmissionResponses(submissions []*types.QuizSubmission) []types.QuizSubmissionResponse {
	out := make([]types.QuizSubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		out = append(out, toQuizSubmissionResponse(submission))
	}
	return out
}

func toEnrollmentResponse(enrollment *types.Enrollment) types.EnrollmentResponse {
	out := types.EnrollmentResponse{
		StudentID:  enrollment.UserID,
		CourseID:   enrollment.CourseID,
		EnrollDate: enrollment.EnrollDate,
		Status:     enrollment.Status,
	}
	if enrollment.Student != nil {
		out.StudentName = enrollment.Student.Name
	}
	if enrollment.Course != nil {
		out.CourseTitle = enrollment.Course.Title
	}
	return out
}

func toEnrollmentResponses(enrollments []*types.Enrollment) []types.EnrollmentResponse {
	out := make([]types.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		out = append(out, toEnrollmentResponse(enrollment))
	}
	return out
}

func toCourseReviewResponse(review *types.CourseReview) types.CourseReviewResponse {
	out := types.CourseReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		CourseID:  review.CourseID,
		StudentID: review.StudentID,
	}
	if review.Course != nil {
		out.CourseTitle = review.Course.Title
	}
	if review.Student != nil {
		out.StudentName = review.Student.Name
	}
	return out
}

func toCourseReviewResponses(reviews []*types.CourseReview) []types.CourseReviewResponse {
	out := make([]types.CourseReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toCourseReviewResponse(review))
	}
	return out
}

func toTagResponse(tag *types.Tag) types.TagResponse {
	return types.TagResponse{ID: tag.ID, Name: tag.Name}
}

func toTagResponses(tags []*types.Tag) []types.TagResponse {
	out := make([]types.TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, toTagResponse(tag))
	}
	return out
}
