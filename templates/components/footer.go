package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteFooter(year int) g.Node {
	return Footer(
		Class("py-8 text-center text-sm text-slate-600"),
		g.Text(fmt.Sprintf("© %d Chimney Care. All rights reserved.", year)),
	)
}
