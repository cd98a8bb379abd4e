// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package pages renders server-side HTML with gomponents.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/notify"
)

// RefreshSeconds is how often the page reloads while a confirmation is pending
const RefreshSeconds = "2"

// LandingData is everything the landing page shows for one session
type LandingData struct {
	Competition competition.Competition
	Form        entry.Form
	State       entry.State
	Toasts      []notify.Notification
}

// Component adapts a gomponents node to templ so it can be served by templ.Handler
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func Landing(d LandingData) g.Node {
	c := d.Competition
	submitting := d.State == entry.Submitting

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.If(submitting, h.Meta(g.Attr("http-equiv", "refresh"), h.Content(RefreshSeconds))),
				h.TitleEl(g.Textf("%s - Win a %s", c.Brand, c.PrizeName)),
				h.StyleEl(g.Raw(stylesheet)),
			),
			h.Body(
				siteHeader(c),
				toasts(d.Toasts),
				h.Main(
					hero(c),
					entryForm(c, d.Form, submitting),
					trust(c),
				),
				siteFooter(c),
			),
		),
	)
}

func siteHeader(c competition.Competition) g.Node {
	return h.Header(h.Class("site-header"),
		h.H1(g.Text(c.Brand)),
		h.P(h.Class("badge"), g.Text("Live Competition")),
	)
}

func toasts(ns []notify.Notification) g.Node {
	if len(ns) == 0 {
		return nil
	}
	return h.Div(h.Class("toasts"), g.Attr("role", "status"), g.Attr("aria-live", "polite"),
		g.Map(ns, func(n notify.Notification) g.Node {
			return h.Div(h.Class("toast toast-"+string(n.Kind)), g.Text(n.Text))
		}),
	)
}

func hero(c competition.Competition) g.Node {
	return h.Section(h.Class("hero"),
		h.P(h.Class("badge"), g.Text("Current Prize Draw")),
		h.H2(g.Text("Win a "), h.Strong(g.Text(c.PrizeName))),
		h.P(g.Text(c.Tagline())),
		h.Ul(h.Class("stats"),
			stat(c.PrizeLabel(), "Prize Value"),
			stat(c.ShortFeeLabel(), "Entry Cost"),
			stat("Legal", "Skill-Based"),
		),
	)
}

func stat(value, label string) g.Node {
	return h.Li(h.Strong(g.Text(value)), h.P(g.Text(label)))
}

func entryForm(c competition.Competition, f entry.Form, submitting bool) g.Node {
	button := h.Button(h.Type("submit"), g.Text(c.SubmitLabel()))
	if submitting {
		button = h.Button(h.Type("submit"), h.Disabled(), g.Text("Processing..."))
	}

	return h.Section(h.Class("entry"), h.ID("enter"),
		h.H2(g.Text("Enter the Competition")),
		h.P(g.Textf("Answer the skill question below and pay %s to enter", c.ShortFeeLabel())),
		g.El("form", h.Action("/enter"), h.Method("post"),
			field(entry.FieldName, "Full Name *", "text", "Enter your full name", f.Name),
			field(entry.FieldEmail, "Email Address *", "email", "Enter your email", f.Email),
			h.Div(h.Class("skill"),
				field(entry.FieldAnswer, "Skill Question: "+c.SkillQuestion+" *", "text", c.AnswerPlaceholder, f.Answer),
				h.P(h.Class("hint"), g.Text("Hint: "+c.Hint)),
			),
			h.Div(h.Class("fee"),
				h.Strong(g.Text("Entry Fee")), g.Text(" "+c.FeeLabel()),
				h.P(g.Text("Secure payment processed by Stripe")),
			),
			button,
		),
	)
}

func field(name entry.Field, label, inputType, placeholder, value string) g.Node {
	id := string(name)
	return h.Div(h.Class("field"),
		g.El("label", h.For(id), g.Text(label)),
		h.Input(h.ID(id), h.Name(id), h.Type(inputType), h.Placeholder(placeholder), h.Value(value), h.Required()),
	)
}

func trust(c competition.Competition) g.Node {
	return h.Section(h.Class("trust"),
		h.H3(g.Textf("Why Choose %s?", c.Brand)),
		h.Ul(
			g.Map(c.Features, func(f competition.Feature) g.Node {
				return h.Li(h.H4(g.Text(f.Title)), h.P(g.Text(f.Text)))
			}),
		),
	)
}

func siteFooter(c competition.Competition) g.Node {
	return h.Footer(
		h.P(h.Strong(g.Text(c.Brand))),
		h.P(g.Text("Legal skill-based competitions with amazing prizes")),
		h.P(h.Class("small"), g.Text(c.Disclaimer)),
	)
}

const stylesheet = `
body{margin:0;font-family:system-ui,sans-serif;background:#eff6ff;color:#111827}
.site-header{display:flex;justify-content:space-between;align-items:center;padding:1rem 2rem;background:#fff}
.badge{display:inline-block;padding:.25rem .75rem;border-radius:999px;background:#dbeafe;color:#1e40af}
.hero,.entry,.trust{max-width:48rem;margin:0 auto;padding:3rem 1rem;text-align:center}
.stats,.trust ul{display:flex;gap:1rem;justify-content:center;list-style:none;padding:0}
.stats li,.trust li{flex:1;background:#fff;border-radius:.5rem;padding:1rem}
.entry form{background:#fff;border-radius:1rem;padding:2rem;text-align:left}
.field{margin-bottom:1rem}.field label{display:block;font-weight:600}
.field input{width:100%;padding:.5rem;box-sizing:border-box}
.skill{background:#eff6ff;padding:1rem;border-radius:.5rem}.hint{font-size:.875rem;color:#1d4ed8}
.fee{margin:1rem 0;padding:1rem;background:#f9fafb;border-radius:.5rem}
button{width:100%;padding:.75rem;font-size:1.1rem;background:#2563eb;color:#fff;border:0;border-radius:.5rem}
button[disabled]{opacity:.6}
.toasts{position:fixed;top:1rem;right:1rem;z-index:10}
.toast{margin-bottom:.5rem;padding:.75rem 1rem;border-radius:.5rem;background:#fff;box-shadow:0 2px 8px #0002}
.toast-error{border-left:4px solid #dc2626}.toast-success{border-left:4px solid #16a34a}.toast-info{border-left:4px solid #2563eb}
footer{background:#111827;color:#fff;text-align:center;padding:2rem}.small{font-size:.8rem;color:#9ca3af}
`
