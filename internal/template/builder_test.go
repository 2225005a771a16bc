package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = Profile{
	Name:      "Shubham Pawar",
	Title:     "MERN Stack Developer | Software Engineer",
	LinkedIn:  "https://www.linkedin.com/in/shubhampawar-",
	Portfolio: "https://shubhamsportfoliosite.netlify.app/",
	Email:     "pawarshubham1295@gmail.com",
	Phone:     "7020567907",
}

func TestBuildDefault(t *testing.T) {
	b := NewBuilder(testProfile)

	email := b.Build("Priya", "priya@acme.com", "Application for the role")

	assert.Equal(t, "Application for the role", email.Subject)
	assert.True(t, strings.HasPrefix(email.Text, "Hi Priya,"))
	assert.Contains(t, email.Text, testProfile.LinkedIn)
	assert.Contains(t, email.Text, "Warm regards,\n"+testProfile.Name)
	assert.Contains(t, email.HTML, "<p>Hi Priya,</p>")
	assert.Contains(t, email.HTML, testProfile.Portfolio)
}

func TestBuildGreetingFallsBackToHiringTeam(t *testing.T) {
	b := NewBuilder(testProfile)

	// 名字空白時固定用 Hiring Team，不管 email 長怎樣
	for _, addr := range []string{"hr@acme.com", "someone@random.io"} {
		email := b.Build("  ", addr, "subj")
		assert.True(t, strings.HasPrefix(email.Text, "Hi Hiring Team,"), "addr=%s", addr)
	}
}

func TestBuildOverride(t *testing.T) {
	b := NewBuilder(testProfile)

	email := b.BuildOverride("Priya", "priya@acme.com", "Custom subject", "I saw your posting.\nSecond line.")

	assert.Equal(t, "Custom subject", email.Subject)
	assert.Contains(t, email.Text, "I saw your posting.\nSecond line.")
	assert.Contains(t, email.Text, "Warm regards,\n"+testProfile.Name)
	assert.Contains(t, email.HTML, "white-space:pre-wrap")
	assert.Contains(t, email.HTML, "I saw your posting.")
}

func TestHTMLEscapesUserInput(t *testing.T) {
	b := NewBuilder(testProfile)

	name := `<script>&"'`
	email := b.BuildOverride(name, "x@y.com", "s", `body with <b>&"'`)

	require.NotContains(t, email.HTML, "<script>")
	assert.Contains(t, email.HTML, "&lt;script&gt;")
	assert.NotContains(t, email.HTML, "<b>&")

	// 純文字版不需要跳脫
	assert.Contains(t, email.Text, name)
}
