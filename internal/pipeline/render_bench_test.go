//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"testing"

	"github.com/alnah/go-meal2html/internal/assets"
)

// BenchmarkRenderInline benchmarks inline bold rendering and escaping.
// Called for every list item and paragraph line in a plan.
func BenchmarkRenderInline(b *testing.B) {
	inputs := []struct {
		name string
		text string
	}{
		{"plain", "chicken stir fry with rice"},
		{"escaping", "mac & cheese <fast> \"weeknight\""},
		{"single_bold", "use the **good** olive oil"},
		{"many_bold", strings.Repeat("**prep** and chop, ", 20)},
		{"long_plain", strings.Repeat("a long ingredient line without markup ", 40)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result := RenderInline(input.text)
				_ = result
			}
		})
	}
}

// BenchmarkRenderBlocks benchmarks body block rendering.
func BenchmarkRenderBlocks(b *testing.B) {
	inputs := []struct {
		name  string
		lines []string
	}{
		{"short_list", []string{"- dough", "- sauce", "- mozzarella"}},
		{"list_and_notes", generateBodyLines(5, 3)},
		{"long_body", generateBodyLines(30, 10)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result := RenderBlocks(input.lines)
				_ = result
			}
		})
	}
}

// BenchmarkParseDocument benchmarks plan parsing scaling with section count.
func BenchmarkParseDocument(b *testing.B) {
	parser := &PlanParser{}
	ctx := context.Background()

	sizes := []int{1, 7, 30, 100}

	for _, size := range sizes {
		content := generateWeeklyPlan(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result := parser.ParseDocument(ctx, content)
				_ = result
			}
		})
	}
}

// BenchmarkParseDocumentParallel benchmarks concurrent plan parsing.
func BenchmarkParseDocumentParallel(b *testing.B) {
	parser := &PlanParser{}
	ctx := context.Background()
	content := generateWeeklyPlan(7)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			result := parser.ParseDocument(ctx, content)
			_ = result
		}
	})
}

// BenchmarkRenderCard benchmarks meal card template execution.
func BenchmarkRenderCard(b *testing.B) {
	renderer := newBenchRenderer(b)
	ctx := context.Background()

	cards := []struct {
		name string
		data *CardData
	}{
		{"title_only", &CardData{MealTitle: "Weeknight Special", Body: template.HTML("<p>Quick.</p>")}},
		{"with_day", &CardData{Day: "Monday", MealTitle: "Pizza Night", Body: template.HTML("<ul><li>dough</li></ul>")}},
		{"full", &CardData{
			Day:       "Monday",
			Date:      "Feb 23, 2026",
			MealTitle: "Pizza Night",
			Body:      template.HTML(RenderBlocks(generateBodyLines(10, 4))),
		}},
	}

	for _, card := range cards {
		b.Run(card.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result, err := renderer.RenderCard(ctx, card.data)
				if err != nil {
					b.Fatal(err)
				}
				_ = result
			}
		})
	}
}

// BenchmarkRenderPage benchmarks page shell template execution.
func BenchmarkRenderPage(b *testing.B) {
	renderer := newBenchRenderer(b)
	ctx := context.Background()

	counts := []int{1, 7, 30}

	for _, count := range counts {
		data := &PageData{
			Title: "Weekly Meal Plan",
			Intro: template.HTML("<p>Batch cook on Sunday.</p>"),
			Cards: generateCards(count),
		}
		b.Run(fmt.Sprintf("cards_%d", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result, err := renderer.RenderPage(ctx, data)
				if err != nil {
					b.Fatal(err)
				}
				_ = result
			}
		})
	}
}

// Helper functions for generating benchmark input

func newBenchRenderer(b *testing.B) *TemplateRenderer {
	b.Helper()

	loader := assets.NewEmbeddedLoader()
	ts, err := loader.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		b.Fatal(err)
	}
	renderer, err := NewTemplateRenderer(ts.Page, ts.Card)
	if err != nil {
		b.Fatal(err)
	}
	return renderer
}

func generateBodyLines(items, notes int) []string {
	var lines []string
	for i := 0; i < items; i++ {
		lines = append(lines, fmt.Sprintf("- ingredient %d with **emphasis**", i+1))
	}
	lines = append(lines, "")
	for i := 0; i < notes; i++ {
		lines = append(lines, fmt.Sprintf("Note %d about prep & timing.", i+1))
		lines = append(lines, "")
	}
	return lines
}

func generateWeeklyPlan(sections int) string {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	var sb strings.Builder
	sb.WriteString("# Weekly Meal Plan\n\n")
	sb.WriteString("Batch cook on Sunday, shop on Saturday.\n\n")

	for i := 0; i < sections; i++ {
		day := days[i%len(days)]
		sb.WriteString(fmt.Sprintf("## %s – Meal %d\n\n", day, i+1))
		sb.WriteString("- main ingredient\n")
		sb.WriteString("- side ingredient\n")
		sb.WriteString("- something **special**\n\n")
		sb.WriteString("Leftovers keep until the next day.\n\n")
		if i%5 == 0 {
			sb.WriteString("---\n\n")
		}
	}

	return sb.String()
}

func generateCards(count int) []template.HTML {
	cards := make([]template.HTML, count)
	for i := 0; i < count; i++ {
		cards[i] = template.HTML(fmt.Sprintf(
			`<section class="meal-card"><h2>Meal %d</h2><div class="meal-body"><p>Body.</p></div></section>`, i+1))
	}
	return cards
}
