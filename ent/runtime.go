// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/naghz/naghz/ent/answerevent"
	"github.com/naghz/naghz/ent/course"
	"github.com/naghz/naghz/ent/dailyflag"
	"github.com/naghz/naghz/ent/heartledger"
	"github.com/naghz/naghz/ent/llmrequestevent"
	"github.com/naghz/naghz/ent/page"
	"github.com/naghz/naghz/ent/pageoption"
	"github.com/naghz/naghz/ent/pageprogress"
	"github.com/naghz/naghz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescCourseID is the schema descriptor for course_id field.
	answereventDescCourseID := answereventFields[1].Descriptor()
	// answerevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	answerevent.CourseIDValidator = answereventDescCourseID.Validators[0].(func(string) error)
	// answereventDescPageID is the schema descriptor for page_id field.
	answereventDescPageID := answereventFields[2].Descriptor()
	// answerevent.PageIDValidator is a validator for the "page_id" field. It is called by the builders before save.
	answerevent.PageIDValidator = answereventDescPageID.Validators[0].(func(string) error)
	// answereventDescTestType is the schema descriptor for test_type field.
	answereventDescTestType := answereventFields[3].Descriptor()
	// answerevent.TestTypeValidator is a validator for the "test_type" field. It is called by the builders before save.
	answerevent.TestTypeValidator = answereventDescTestType.Validators[0].(func(string) error)
	// answereventDescSelectionText is the schema descriptor for selection_text field.
	answereventDescSelectionText := answereventFields[5].Descriptor()
	// answerevent.DefaultSelectionText holds the default value on creation for the selection_text field.
	answerevent.DefaultSelectionText = answereventDescSelectionText.Default.(string)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCourseID is the schema descriptor for course_id field.
	courseDescCourseID := courseFields[0].Descriptor()
	// course.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	course.CourseIDValidator = courseDescCourseID.Validators[0].(func(string) error)
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[1].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescSubject is the schema descriptor for subject field.
	courseDescSubject := courseFields[2].Descriptor()
	// course.DefaultSubject holds the default value on creation for the subject field.
	course.DefaultSubject = courseDescSubject.Default.(string)
	dailyflagFields := schema.DailyFlag{}.Fields()
	_ = dailyflagFields
	// dailyflagDescUserID is the schema descriptor for user_id field.
	dailyflagDescUserID := dailyflagFields[0].Descriptor()
	// dailyflag.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	dailyflag.UserIDValidator = dailyflagDescUserID.Validators[0].(func(string) error)
	// dailyflagDescLastShown is the schema descriptor for last_shown field.
	dailyflagDescLastShown := dailyflagFields[1].Descriptor()
	// dailyflag.DefaultLastShown holds the default value on creation for the last_shown field.
	dailyflag.DefaultLastShown = dailyflagDescLastShown.Default.(string)
	// dailyflagDescCompletedDay is the schema descriptor for completed_day field.
	dailyflagDescCompletedDay := dailyflagFields[3].Descriptor()
	// dailyflag.DefaultCompletedDay holds the default value on creation for the completed_day field.
	dailyflag.DefaultCompletedDay = dailyflagDescCompletedDay.Default.(string)
	// dailyflagDescUpdatedAt is the schema descriptor for updated_at field.
	dailyflagDescUpdatedAt := dailyflagFields[4].Descriptor()
	// dailyflag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dailyflag.DefaultUpdatedAt = dailyflagDescUpdatedAt.Default.(func() time.Time)
	// dailyflag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dailyflag.UpdateDefaultUpdatedAt = dailyflagDescUpdatedAt.UpdateDefault.(func() time.Time)
	heartledgerFields := schema.HeartLedger{}.Fields()
	_ = heartledgerFields
	// heartledgerDescUserID is the schema descriptor for user_id field.
	heartledgerDescUserID := heartledgerFields[0].Descriptor()
	// heartledger.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	heartledger.UserIDValidator = heartledgerDescUserID.Validators[0].(func(string) error)
	// heartledgerDescHearts is the schema descriptor for hearts field.
	heartledgerDescHearts := heartledgerFields[1].Descriptor()
	// heartledger.DefaultHearts holds the default value on creation for the hearts field.
	heartledger.DefaultHearts = heartledgerDescHearts.Default.(int)
	// heartledger.HeartsValidator is a validator for the "hearts" field. It is called by the builders before save.
	heartledger.HeartsValidator = heartledgerDescHearts.Validators[0].(func(int) error)
	// heartledgerDescUpdatedAt is the schema descriptor for updated_at field.
	heartledgerDescUpdatedAt := heartledgerFields[2].Descriptor()
	// heartledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	heartledger.DefaultUpdatedAt = heartledgerDescUpdatedAt.Default.(func() time.Time)
	// heartledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	heartledger.UpdateDefaultUpdatedAt = heartledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescPageID is the schema descriptor for page_id field.
	pageDescPageID := pageFields[0].Descriptor()
	// page.PageIDValidator is a validator for the "page_id" field. It is called by the builders before save.
	page.PageIDValidator = pageDescPageID.Validators[0].(func(string) error)
	// pageDescCourseID is the schema descriptor for course_id field.
	pageDescCourseID := pageFields[1].Descriptor()
	// page.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	page.CourseIDValidator = pageDescCourseID.Validators[0].(func(string) error)
	// pageDescNumber is the schema descriptor for number field.
	pageDescNumber := pageFields[2].Descriptor()
	// page.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	page.NumberValidator = pageDescNumber.Validators[0].(func(int) error)
	// pageDescLength is the schema descriptor for length field.
	pageDescLength := pageFields[3].Descriptor()
	// page.LengthValidator is a validator for the "length" field. It is called by the builders before save.
	page.LengthValidator = pageDescLength.Validators[0].(func(int) error)
	// pageDescPageType is the schema descriptor for page_type field.
	pageDescPageType := pageFields[4].Descriptor()
	// page.PageTypeValidator is a validator for the "page_type" field. It is called by the builders before save.
	page.PageTypeValidator = pageDescPageType.Validators[0].(func(string) error)
	// pageDescTestType is the schema descriptor for test_type field.
	pageDescTestType := pageFields[5].Descriptor()
	// page.DefaultTestType holds the default value on creation for the test_type field.
	page.DefaultTestType = pageDescTestType.Default.(string)
	// pageDescGrid is the schema descriptor for grid field.
	pageDescGrid := pageFields[6].Descriptor()
	// page.DefaultGrid holds the default value on creation for the grid field.
	page.DefaultGrid = pageDescGrid.Default.(string)
	// pageDescAiGraded is the schema descriptor for ai_graded field.
	pageDescAiGraded := pageFields[15].Descriptor()
	// page.DefaultAiGraded holds the default value on creation for the ai_graded field.
	page.DefaultAiGraded = pageDescAiGraded.Default.(bool)
	// pageDescGiveFeedback is the schema descriptor for give_feedback field.
	pageDescGiveFeedback := pageFields[16].Descriptor()
	// page.DefaultGiveFeedback holds the default value on creation for the give_feedback field.
	page.DefaultGiveFeedback = pageDescGiveFeedback.Default.(bool)
	// pageDescGivePoint is the schema descriptor for give_point field.
	pageDescGivePoint := pageFields[17].Descriptor()
	// page.DefaultGivePoint holds the default value on creation for the give_point field.
	page.DefaultGivePoint = pageDescGivePoint.Default.(bool)
	// pageDescGivePointByAi is the schema descriptor for give_point_by_ai field.
	pageDescGivePointByAi := pageFields[18].Descriptor()
	// page.DefaultGivePointByAi holds the default value on creation for the give_point_by_ai field.
	page.DefaultGivePointByAi = pageDescGivePointByAi.Default.(bool)
	// pageDescScoreThreshold is the schema descriptor for score_threshold field.
	pageDescScoreThreshold := pageFields[19].Descriptor()
	// page.DefaultScoreThreshold holds the default value on creation for the score_threshold field.
	page.DefaultScoreThreshold = pageDescScoreThreshold.Default.(int)
	// pageDescLowScorePageID is the schema descriptor for low_score_page_id field.
	pageDescLowScorePageID := pageFields[20].Descriptor()
	// page.DefaultLowScorePageID holds the default value on creation for the low_score_page_id field.
	page.DefaultLowScorePageID = pageDescLowScorePageID.Default.(string)
	// pageDescHighScorePageID is the schema descriptor for high_score_page_id field.
	pageDescHighScorePageID := pageFields[21].Descriptor()
	// page.DefaultHighScorePageID holds the default value on creation for the high_score_page_id field.
	page.DefaultHighScorePageID = pageDescHighScorePageID.Default.(string)
	pageoptionFields := schema.PageOption{}.Fields()
	_ = pageoptionFields
	// pageoptionDescPageID is the schema descriptor for page_id field.
	pageoptionDescPageID := pageoptionFields[0].Descriptor()
	// pageoption.PageIDValidator is a validator for the "page_id" field. It is called by the builders before save.
	pageoption.PageIDValidator = pageoptionDescPageID.Validators[0].(func(string) error)
	// pageoptionDescOptionID is the schema descriptor for option_id field.
	pageoptionDescOptionID := pageoptionFields[1].Descriptor()
	// pageoption.OptionIDValidator is a validator for the "option_id" field. It is called by the builders before save.
	pageoption.OptionIDValidator = pageoptionDescOptionID.Validators[0].(func(int) error)
	// pageoptionDescText is the schema descriptor for text field.
	pageoptionDescText := pageoptionFields[2].Descriptor()
	// pageoption.TextValidator is a validator for the "text" field. It is called by the builders before save.
	pageoption.TextValidator = pageoptionDescText.Validators[0].(func(string) error)
	// pageoptionDescCorrect is the schema descriptor for correct field.
	pageoptionDescCorrect := pageoptionFields[4].Descriptor()
	// pageoption.DefaultCorrect holds the default value on creation for the correct field.
	pageoption.DefaultCorrect = pageoptionDescCorrect.Default.(bool)
	// pageoptionDescIcon is the schema descriptor for icon field.
	pageoptionDescIcon := pageoptionFields[5].Descriptor()
	// pageoption.DefaultIcon holds the default value on creation for the icon field.
	pageoption.DefaultIcon = pageoptionDescIcon.Default.(string)
	pageprogressFields := schema.PageProgress{}.Fields()
	_ = pageprogressFields
	// pageprogressDescUserID is the schema descriptor for user_id field.
	pageprogressDescUserID := pageprogressFields[0].Descriptor()
	// pageprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pageprogress.UserIDValidator = pageprogressDescUserID.Validators[0].(func(string) error)
	// pageprogressDescCourseID is the schema descriptor for course_id field.
	pageprogressDescCourseID := pageprogressFields[1].Descriptor()
	// pageprogress.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	pageprogress.CourseIDValidator = pageprogressDescCourseID.Validators[0].(func(string) error)
	// pageprogressDescPageNumber is the schema descriptor for page_number field.
	pageprogressDescPageNumber := pageprogressFields[2].Descriptor()
	// pageprogress.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	pageprogress.PageNumberValidator = pageprogressDescPageNumber.Validators[0].(func(int) error)
	// pageprogressDescCompleted is the schema descriptor for completed field.
	pageprogressDescCompleted := pageprogressFields[3].Descriptor()
	// pageprogress.DefaultCompleted holds the default value on creation for the completed field.
	pageprogress.DefaultCompleted = pageprogressDescCompleted.Default.(bool)
	// pageprogressDescUpdatedAt is the schema descriptor for updated_at field.
	pageprogressDescUpdatedAt := pageprogressFields[4].Descriptor()
	// pageprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pageprogress.DefaultUpdatedAt = pageprogressDescUpdatedAt.Default.(func() time.Time)
	// pageprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pageprogress.UpdateDefaultUpdatedAt = pageprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
}
