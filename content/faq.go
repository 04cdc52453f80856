package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FAQItem is one question and answer.
type FAQItem struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// FAQ is the ordered list of questions shown on the FAQ page.
type FAQ struct {
	Items []FAQItem `yaml:"items"`
}

// LoadFAQ decodes a YAML document with a top-level items list. Items missing
// a question or answer are dropped; missing IDs are numbered.
func LoadFAQ(r io.Reader) (*FAQ, error) {
	var f FAQ
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode faq: %w", err)
	}
	items := f.Items[:0]
	for i, it := range f.Items {
		if strings.TrimSpace(it.Question) == "" || strings.TrimSpace(it.Answer) == "" {
			continue
		}
		if it.ID == "" {
			it.ID = fmt.Sprintf("faq-%d", i+1)
		}
		items = append(items, it)
	}
	f.Items = items
	return &f, nil
}

// ReadFAQFile loads the FAQ stored at path.
func ReadFAQFile(path string) (*FAQ, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open faq: %w", err)
	}
	defer file.Close()
	return LoadFAQ(file)
}

// Search returns items whose question, answer or category contains term,
// ignoring case. An empty term returns every item.
func (f *FAQ) Search(term string) []FAQItem {
	if f == nil {
		return nil
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return f.Items
	}
	var out []FAQItem
	for _, it := range f.Items {
		if strings.Contains(strings.ToLower(it.Question), term) ||
			strings.Contains(strings.ToLower(it.Answer), term) ||
			strings.Contains(strings.ToLower(it.Category), term) {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (f *FAQ) Categories() []string {
	if f == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, it := range f.Items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}
