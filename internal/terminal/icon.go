package terminal

import (
	"encoding/base64"
	"fmt"

	"github.com/pranshuparmar/devps/pkg/model"
)

// IconPlaceholder fills the icon cell for records without one, keeping
// columns aligned. Rendered icons occupy three cells of width.
const IconPlaceholder = "   "

// RenderIcon embeds the icon as an iTerm2 inline image, sizePx pixels
// square regardless of the source aspect ratio.
func RenderIcon(icon model.Icon, sizePx int) string {
	return fmt.Sprintf("\x1b]1337;File=inline=1;width=%dpx;height=%dpx;:%s\a",
		sizePx, sizePx, base64.StdEncoding.EncodeToString(icon.Image))
}
