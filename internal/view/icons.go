package view

import (
	"fmt"
	"html/template"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
)

var iconPaths = map[model.Icon]string{
	model.IconBusiness: "M20.25 14.15v4.25a2.25 2.25 0 0 1-2.25 2.25H6a2.25 2.25 0 0 1-2.25-2.25v-4.25M16.5 6.75V5.25A2.25 2.25 0 0 0 14.25 3h-4.5A2.25 2.25 0 0 0 7.5 5.25v1.5m-3.75 0h16.5v6H3.75v-6Z",
	model.IconGov:      "M12 3 3 7.5h18L12 3Zm-7.5 6v8.25m5-8.25v8.25m5-8.25v8.25m5-8.25v8.25M3 21h18",
	model.IconHealth:   "M21 8.25c0-2.49-2.1-4.5-4.69-4.5-1.93 0-3.59 1.12-4.31 2.73-.72-1.61-2.38-2.73-4.31-2.73C5.1 3.75 3 5.76 3 8.25c0 7.22 9 12 9 12s9-4.78 9-12Z",
	model.IconPeople:   "M15 19.13a9.38 9.38 0 0 0 5.63-1.13 4.5 4.5 0 0 0-8.1-2.63M15 19.13v-.01a6 6 0 0 0-12 0v.01A12.3 12.3 0 0 0 9 20.25c2.17 0 4.2-.41 6-1.12ZM12 6.38a3.38 3.38 0 1 1-6.75 0 3.38 3.38 0 0 1 6.75 0Zm8.25 2.25a2.63 2.63 0 1 1-5.25 0 2.63 2.63 0 0 1 5.25 0Z",
	model.IconScience:  "M9.75 3.1v5.71a2.25 2.25 0 0 1-.66 1.59L5 14.5m4.75-11.4a24.3 24.3 0 0 1 4.5 0m0 0v5.71c0 .6.24 1.17.66 1.59L19.8 15.3M14.25 3.1c.25.02.5.05.75.08M5 14.5l-1.57 1.57c-1.38 1.38-.4 3.73 1.55 3.73h14.04c1.95 0 2.93-2.35 1.55-3.73L19.8 15.3M5 14.5h14.8",
	model.IconWorld:    "M12 21a9 9 0 1 0 0-18 9 9 0 0 0 0 18Zm0 0c2.49 0 4.5-4.03 4.5-9S14.49 3 12 3s-4.5 4.03-4.5 9 2.01 9 4.5 9Zm-8.72-6.75h17.44M3.28 9.75h17.44",
	model.IconFinance:  "M15.75 15.75V18m-7.5-6.75h.01v.01h-.01v-.01Zm0 2.25h.01v.01h-.01v-.01Zm0 2.25h.01v.01h-.01v-.01ZM6 21h12a2.25 2.25 0 0 0 2.25-2.25V5.25A2.25 2.25 0 0 0 18 3H6a2.25 2.25 0 0 0-2.25 2.25v13.5A2.25 2.25 0 0 0 6 21ZM8.25 6.75h7.5v3h-7.5v-3Z",
	model.IconMap:      "M9 6.75V15m6-6v8.25m.5 3.5 4.87-2.44c.38-.19.63-.58.63-1.01V4.82c0-.84-.88-1.38-1.63-1.01L15.5 5.76a1.13 1.13 0 0 1-1 0L9.5 3.25a1.13 1.13 0 0 0-1 0L3.63 5.69C3.25 5.88 3 6.27 3 6.69v12.49c0 .84.88 1.38 1.63 1.01l3.87-1.94a1.13 1.13 0 0 1 1 0l5 2.5c.32.16.69.16 1 0Z",
}

func init() {
	for _, icon := range model.Icons() {
		if _, ok := iconPaths[icon]; !ok {
			panic(fmt.Sprintf("view: no asset registered for icon %q", icon))
		}
	}
}

func IconSVG(icon model.Icon) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg class="icon" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" d="%s"/></svg>`,
		iconPaths[icon],
	))
}
