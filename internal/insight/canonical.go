package insight

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/matfocus/matfocus/internal/logging"
)

// canonicalYAML is the curated insight library shipped with the binary.
//
//go:embed data/canonical.yaml
var canonicalYAML []byte

// MetricExplanation is the why-it-scores-this-way section for one metric.
type MetricExplanation struct {
	Metric      string `yaml:"metric" json:"metric"`
	Explanation string `yaml:"explanation" json:"explanation"`
}

// CanonicalInsight is a curated, human-authored record. Content is loaded
// from static structured documents and immutable at runtime.
type CanonicalInsight struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Overview string `yaml:"overview" json:"overview"`
	// WhyItScores explains each metric's value.
	WhyItScores []MetricExplanation `yaml:"why_it_scores" json:"whyItScores"`
	Tradeoffs   []string            `yaml:"tradeoffs" json:"tradeoffs"`
	// WhenToChoose is the guidance section.
	WhenToChoose []string `yaml:"when_to_choose" json:"whenToChoose"`
	Alternatives []string `yaml:"alternatives" json:"alternatives"`
	Takeaway     string   `yaml:"takeaway" json:"takeaway"`
	// RelatedMaterials keys the fallback overlap matching.
	RelatedMaterials []string `yaml:"related_materials" json:"relatedMaterials"`
}

// MatchRule binds a context shape to a canonical insight. Rules are
// evaluated in document order; the first match wins.
type MatchRule struct {
	// InsightID names the insight this rule selects.
	InsightID string `yaml:"insight_id" json:"insightId"`
	// MaterialIDs, when set, requires an exact set match (order-free)
	// against the context's material ids.
	MaterialIDs []string `yaml:"material_ids,omitempty" json:"materialIds,omitempty"`
	// Tag, when set, matches any context carrying the tag.
	Tag string `yaml:"tag,omitempty" json:"tag,omitempty"`
}

// registryFile is the on-disk document shape.
type registryFile struct {
	Rules    []MatchRule        `yaml:"rules"`
	Insights []CanonicalInsight `yaml:"insights"`
}

// Registry holds the curated insights and their ordered match rules.
type Registry struct {
	rules    []MatchRule
	insights []CanonicalInsight
	byID     map[string]int
}

// NewRegistry validates that every rule points at a known insight.
func NewRegistry(rules []MatchRule, insights []CanonicalInsight) (*Registry, error) {
	byID := make(map[string]int, len(insights))
	for i, ins := range insights {
		if ins.ID == "" {
			return nil, fmt.Errorf("canonical insight at index %d has no id", i)
		}
		if _, dup := byID[ins.ID]; dup {
			return nil, fmt.Errorf("duplicate canonical insight id %q", ins.ID)
		}
		byID[ins.ID] = i
	}
	for _, rule := range rules {
		if _, ok := byID[rule.InsightID]; !ok {
			return nil, fmt.Errorf("match rule references unknown insight %q", rule.InsightID)
		}
	}
	return &Registry{rules: rules, insights: insights, byID: byID}, nil
}

// LoadEmbeddedRegistry parses the canonical library compiled into the
// binary.
func LoadEmbeddedRegistry() (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(canonicalYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing canonical insight library: %w", err)
	}
	return NewRegistry(file.Rules, file.Insights)
}

// Get returns the insight with the given id, or nil.
func (r *Registry) Get(id string) *CanonicalInsight {
	idx, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.insights[idx]
}

// Len returns the number of curated insights.
func (r *Registry) Len() int { return len(r.insights) }

// Match resolves a runtime context to a curated insight.
//
// Explicit rules are evaluated in document order first: an exact
// material-id set match or a tag match selects the rule's insight. When no
// rule matches, the fallback scan returns the first insight whose
// related_materials overlap the context's material ids. No match returns
// nil; partial matches are never merged into a fabricated answer.
func (r *Registry) Match(ctx context.Context, ic Context) *CanonicalInsight {
	log := logging.FromContext(ctx)

	for _, rule := range r.rules {
		if rule.matches(ic) {
			log.Debug().
				Str("component", "insight").
				Str("operation", "canonical_match").
				Str("insight_id", rule.InsightID).
				Msg("explicit rule matched")
			return r.Get(rule.InsightID)
		}
	}

	for i := range r.insights {
		if overlaps(r.insights[i].RelatedMaterials, ic.MaterialIDs) {
			log.Debug().
				Str("component", "insight").
				Str("operation", "canonical_match").
				Str("insight_id", r.insights[i].ID).
				Msg("fallback overlap matched")
			return &r.insights[i]
		}
	}

	log.Debug().
		Str("component", "insight").
		Str("operation", "canonical_match").
		Str("context_type", string(ic.Type)).
		Msg("no canonical insight available")
	return nil
}

// matches evaluates one rule against a context.
func (rule MatchRule) matches(ic Context) bool {
	if len(rule.MaterialIDs) > 0 {
		return sameIDSet(rule.MaterialIDs, ic.MaterialIDs)
	}
	if rule.Tag != "" {
		for _, tag := range ic.Tags {
			if tag == rule.Tag {
				return true
			}
		}
	}
	return false
}

// sameIDSet compares two id lists as sets, ignoring order and duplicates.
func sameIDSet(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	as := uniqueSorted(a)
	bs := uniqueSorted(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func overlaps(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// CanonicalText condenses a curated insight into the display Text shape.
func CanonicalText(ins CanonicalInsight) Text {
	return Text{
		Headline: ins.Takeaway,
		Details:  ins.Overview,
		Source:   SourceCanonical,
	}
}
