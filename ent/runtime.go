// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkline/tutora/ent/assessmentevent"
	"github.com/mkline/tutora/ent/lessonevent"
	"github.com/mkline/tutora/ent/llmrequestevent"
	"github.com/mkline/tutora/ent/schema"
	"github.com/mkline/tutora/ent/sentimentevent"
	"github.com/mkline/tutora/ent/sessionevent"
	"github.com/mkline/tutora/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescTopic is the schema descriptor for topic field.
	assessmenteventDescTopic := assessmenteventFields[1].Descriptor()
	// assessmentevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	assessmentevent.TopicValidator = assessmenteventDescTopic.Validators[0].(func(string) error)
	// assessmenteventDescPhase is the schema descriptor for phase field.
	assessmenteventDescPhase := assessmenteventFields[2].Descriptor()
	// assessmentevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	assessmentevent.PhaseValidator = assessmenteventDescPhase.Validators[0].(func(string) error)
	// assessmenteventDescQuestionText is the schema descriptor for question_text field.
	assessmenteventDescQuestionText := assessmenteventFields[4].Descriptor()
	// assessmentevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	assessmentevent.QuestionTextValidator = assessmenteventDescQuestionText.Validators[0].(func(string) error)
	// assessmenteventDescConcept is the schema descriptor for concept field.
	assessmenteventDescConcept := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultConcept holds the default value on creation for the concept field.
	assessmentevent.DefaultConcept = assessmenteventDescConcept.Default.(string)
	// assessmenteventDescCorrectOption is the schema descriptor for correct_option field.
	assessmenteventDescCorrectOption := assessmenteventFields[7].Descriptor()
	// assessmentevent.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	assessmentevent.CorrectOptionValidator = assessmenteventDescCorrectOption.Validators[0].(func(string) error)
	// assessmenteventDescDifficulty is the schema descriptor for difficulty field.
	assessmenteventDescDifficulty := assessmenteventFields[9].Descriptor()
	// assessmentevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	assessmentevent.DefaultDifficulty = assessmenteventDescDifficulty.Default.(int)
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
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescTopic is the schema descriptor for topic field.
	lessoneventDescTopic := lessoneventFields[1].Descriptor()
	// lessonevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lessonevent.TopicValidator = lessoneventDescTopic.Validators[0].(func(string) error)
	// lessoneventDescSegmentTitle is the schema descriptor for segment_title field.
	lessoneventDescSegmentTitle := lessoneventFields[3].Descriptor()
	// lessonevent.SegmentTitleValidator is a validator for the "segment_title" field. It is called by the builders before save.
	lessonevent.SegmentTitleValidator = lessoneventDescSegmentTitle.Validators[0].(func(string) error)
	sentimenteventMixin := schema.SentimentEvent{}.Mixin()
	sentimenteventMixinFields0 := sentimenteventMixin[0].Fields()
	_ = sentimenteventMixinFields0
	sentimenteventFields := schema.SentimentEvent{}.Fields()
	_ = sentimenteventFields
	// sentimenteventDescTimestamp is the schema descriptor for timestamp field.
	sentimenteventDescTimestamp := sentimenteventMixinFields0[1].Descriptor()
	// sentimentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sentimentevent.DefaultTimestamp = sentimenteventDescTimestamp.Default.(func() time.Time)
	// sentimenteventDescSessionID is the schema descriptor for session_id field.
	sentimenteventDescSessionID := sentimenteventFields[0].Descriptor()
	// sentimentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sentimentevent.SessionIDValidator = sentimenteventDescSessionID.Validators[0].(func(string) error)
	// sentimenteventDescTopic is the schema descriptor for topic field.
	sentimenteventDescTopic := sentimenteventFields[1].Descriptor()
	// sentimentevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sentimentevent.TopicValidator = sentimenteventDescTopic.Validators[0].(func(string) error)
	// sentimenteventDescUnderstanding is the schema descriptor for understanding field.
	sentimenteventDescUnderstanding := sentimenteventFields[6].Descriptor()
	// sentimentevent.DefaultUnderstanding holds the default value on creation for the understanding field.
	sentimentevent.DefaultUnderstanding = sentimenteventDescUnderstanding.Default.(string)
	// sentimenteventDescSuggestion is the schema descriptor for suggestion field.
	sentimenteventDescSuggestion := sentimenteventFields[7].Descriptor()
	// sentimentevent.DefaultSuggestion holds the default value on creation for the suggestion field.
	sentimentevent.DefaultSuggestion = sentimenteventDescSuggestion.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[1].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPreScore is the schema descriptor for pre_score field.
	sessioneventDescPreScore := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPreScore holds the default value on creation for the pre_score field.
	sessionevent.DefaultPreScore = sessioneventDescPreScore.Default.(float64)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescSegmentsCompleted is the schema descriptor for segments_completed field.
	sessioneventDescSegmentsCompleted := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSegmentsCompleted holds the default value on creation for the segments_completed field.
	sessionevent.DefaultSegmentsCompleted = sessioneventDescSegmentsCompleted.Default.(int)
	// sessioneventDescCompleted is the schema descriptor for completed field.
	sessioneventDescCompleted := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCompleted holds the default value on creation for the completed field.
	sessionevent.DefaultCompleted = sessioneventDescCompleted.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
