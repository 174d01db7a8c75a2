// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/klaus-0-0/vault/models"
)

// renderBuildInfoWindow is the about overlay opened with "v" on the menu.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: vault\n%s", info)
	return renderPage("ABOUT", overlayBoxStyle.Render(body), "esc: back")
}
