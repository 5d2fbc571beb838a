// Package meal2html renders weekly meal plans written in a small Markdown
// dialect as self-contained HTML pages.
//
// # Quick Start
//
// Create a converter, convert a plan, and close when done:
//
//	conv, err := meal2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, meal2html.Input{
//	    Markdown: "# Week 9\n\n## Monday – Pizza Night\n\n- Margherita",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("plan.html", result.HTML, 0644)
//
// The result contains the complete HTML page (result.HTML) with all CSS
// inlined, the resolved page title, and the number of meal cards rendered.
//
// # The Plan Dialect
//
// Input is a constrained Markdown dialect, not CommonMark. A document is a
// "# " title, optional intro text, then one "## " heading per meal. Meal
// headings split into day label and meal title on the first " – ", " - ",
// " — ", or " -- " separator. Bodies support unordered lists ("- item"),
// paragraphs, and **bold** spans; "---" lines are discarded. Everything
// else is plain text and is HTML-escaped. General-purpose Markdown
// renderers would accept far more syntax than plan files are allowed to
// contain, which is why conversion is handled by a dialect parser instead.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (BOM strip, line ending normalization)
//  2. Document parsing (title, intro, one section per meal heading)
//  3. Card and page rendering via html/template
//  4. CSS inlining into the page <head>
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := meal2html.New(
//	    meal2html.WithStyle("weekly"),
//	    meal2html.WithDateFormat("european"),
//	    meal2html.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, meal2html.Input{
//	    Markdown: content,
//	    CSS:      "body { font-size: 14px; }",
//	    Title:    "Fallback Title",
//	    Week:     &meal2html.WeekSpec{Year: 2026, Week: 9},
//	})
//
// # Week Dates
//
// When Input.Week names an ISO week, day labels that contain an English
// weekday ("Monday" through "Sunday") gain a calendar date next to the day
// name. Labels without a recognizable weekday simply render without a
// date. Format the dates with WithDateFormat using a preset name ("iso",
// "european", "us", "long") or tokens such as "MMM D, YYYY".
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to share converters across
// goroutines:
//
//	pool := meal2html.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Custom Assets
//
// Override built-in styles and templates using AssetLoader:
//
//	loader, err := meal2html.NewAssetLoader("/path/to/assets")
//	conv, err := meal2html.New(meal2html.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── page.html
//	        └── card.html
//
// Assets missing from the custom location fall back to the embedded
// defaults, so a directory containing a single CSS file is enough to
// restyle the output.
package meal2html
