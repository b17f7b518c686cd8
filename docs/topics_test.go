package docs

import (
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// firstHeadingLevel parses content as markdown and returns the level of
// the first heading, or 0 if none is found.
func firstHeadingLevel(t *testing.T, content string) int {
	t.Helper()
	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader([]byte(content)))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return h.Level
		}
	}
	return 0
}

// TestTopicsStructure checks that every topic starts with a level-1
// heading so concatenated topics render as separate sections.
func TestTopicsStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			if level := firstHeadingLevel(t, content); level != 1 {
				t.Errorf("topic %q should start with a level-1 heading, got level %d", topic, level)
			}
		})
	}
}

// TestReadmeListsAllTopics checks that the readme index and the
// embedded topics stay in sync, in both directions.
func TestReadmeListsAllTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}

	re := regexp.MustCompile(`(?m)^- \*\*([a-z]+)\*\*:`)
	listed := map[string]bool{}
	for _, m := range re.FindAllStringSubmatch(readme, -1) {
		listed[m[1]] = true
	}

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
		delete(listed, topic)
	}
	for topic := range listed {
		t.Errorf("readme.md lists unknown topic %q", topic)
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Amortization", "# Tranches", "# Waterfall"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopics(\"*\") missing %q", want)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() should fail for an unknown topic")
	}
}
