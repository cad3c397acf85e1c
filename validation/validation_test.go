package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SankarPatnaik/dataflow-studio/models"
)

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestCheckValidPayload(t *testing.T) {
	payload := models.InsertPipeline{
		Name:          "Orders ETL",
		Configuration: &models.PipelineConfig{},
		UserID:        1,
	}
	assert.Nil(t, Check(payload))
}

func TestCheckReportsEveryViolation(t *testing.T) {
	errs := Check(models.InsertPipeline{Status: "bogus"})
	require.NotEmpty(t, errs)

	got := fields(errs)
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "configuration")
	assert.Contains(t, got, "status")
	assert.Contains(t, got, "userId")
}

func TestCheckUsesJSONFieldNames(t *testing.T) {
	errs := Check(models.InsertSchedule{PipelineID: 1})
	require.Len(t, errs, 1)
	assert.Equal(t, "cronExpression", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestCheckRangeMessages(t *testing.T) {
	progress := 150
	errs := Check(models.InsertJob{PipelineID: 1, Progress: &progress})
	require.Len(t, errs, 1)
	assert.Equal(t, "progress", errs[0].Field)
	assert.Equal(t, "must be at most 100", errs[0].Message)
}

func TestCheckEnumMessage(t *testing.T) {
	errs := Check(models.InsertConnector{
		Name:          "pg",
		Type:          "postgresql",
		Configuration: map[string]any{"host": "db"},
		Status:        "broken-ish",
		UserID:        1,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
	assert.Equal(t, "must be one of: active, inactive, error", errs[0].Message)
}
