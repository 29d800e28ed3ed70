package api

import (
	"encoding/json"
	"testing"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStringList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"native list", `["Go","Postgres"]`, []string{"Go", "Postgres"}},
		{"native list with padding", `[" Go ","","Postgres "]`, []string{"Go", "Postgres"}},
		{"json list inside a string", `"[\"Go\",\"Postgres\"]"`, []string{"Go", "Postgres"}},
		{"comma separated string", `"Go, Postgres ,Docker"`, []string{"Go", "Postgres", "Docker"}},
		{"single value string", `"Go"`, []string{"Go"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeStringList(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeStringList_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		``,          // absent
		`[]`,        // empty list
		`[" ", ""]`, // only blanks
		`", ,"`,     // commas and blanks
		`42`,        // wrong type
	}
	for _, raw := range invalid {
		_, err := normalizeStringList(json.RawMessage(raw))
		assert.ErrorIs(t, err, errEmptyList, raw)
	}
}

func TestNormalizeSkillItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []models.SkillItem
	}{
		{"plain strings", `["React","Vue"]`, []models.SkillItem{{Name: "React"}, {Name: "Vue"}}},
		{"name objects", `[{"name":"React"},{"name":"Vue"}]`, []models.SkillItem{{Name: "React"}, {Name: "Vue"}}},
		{"mixed entries", `["React",{"name":"Vue"},{"name":" "}]`, []models.SkillItem{{Name: "React"}, {Name: "Vue"}}},
		{"comma separated string", `"React, Vue"`, []models.SkillItem{{Name: "React"}, {Name: "Vue"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeSkillItems(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSkillItems_Empty(t *testing.T) {
	t.Parallel()

	_, err := normalizeSkillItems(json.RawMessage(`[{"name":""}]`))
	assert.ErrorIs(t, err, errEmptyList)
}

func TestParseFlexBool(t *testing.T) {
	t.Parallel()

	boolPtr := func(v bool) *bool { return &v }

	tests := []struct {
		raw     string
		want    *bool
		wantErr bool
	}{
		{``, nil, false},
		{`true`, boolPtr(true), false},
		{`false`, boolPtr(false), false},
		{`"true"`, boolPtr(true), false},
		{`"false"`, boolPtr(false), false},
		{`" true"`, boolPtr(true), false},
		{`"yes"`, nil, true},
		{`1`, nil, true},
	}

	for _, tt := range tests {
		got, err := parseFlexBool(json.RawMessage(tt.raw))
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
