package logview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drover/internal/domain"
)

func TestClassify_KnownTypes(t *testing.T) {
	tests := []struct {
		logType  string
		category string
		color    string
	}{
		{"error", "error", "red"},
		{"warning", "warning", "orange"},
		{"info", "info", "blue"},
		{"log", "log", "green"},
		{"trace", "trace", "gray"},
	}

	for _, tt := range tests {
		class := Classify(domain.ConsoleRecord{Type: tt.logType})
		assert.Equal(t, tt.category, class.Category, tt.logType)
		assert.Equal(t, tt.color, class.Color, tt.logType)
	}
}

func TestClassify_UnknownTypeFailsOpen(t *testing.T) {
	assert.Equal(t, DefaultClass, Classify(domain.ConsoleRecord{Type: "debug"}))
	assert.Equal(t, DefaultClass, Classify(domain.ConsoleRecord{Type: ""}))
	assert.Equal(t, DefaultClass, Classify(domain.ConsoleRecord{Type: "ERROR"}), "lookup is exact, not case-folded")
}

func TestClassifyStatus_Buckets(t *testing.T) {
	tests := []struct {
		status   int
		category string
	}{
		{100, "info"},
		{199, "info"},
		{200, "success"},
		{204, "success"},
		{299, "success"},
		{300, "redirect"},
		{304, "redirect"},
		{399, "redirect"},
		{400, "clientError"},
		{404, "clientError"},
		{499, "clientError"},
		{500, "serverError"},
		{503, "serverError"},
		{599, "serverError"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, ClassifyStatus(tt.status).Category, "status %d", tt.status)
	}
}

func TestClassifyStatus_OutOfRangeFailsOpen(t *testing.T) {
	for _, status := range []int{99, 600, 0, -1, 1000} {
		assert.Equal(t, DefaultClass, ClassifyStatus(status), "status %d", status)
	}
}
