package shell

import (
	"fmt"

	pcore "umbrella-glide/pkg/core"
)

var (
	nameAdjectives = []string{"Swift", "Brave", "Flying", "Epic", "Mighty"}
	nameNouns      = []string{"Glider", "Diver", "Falcon", "Eagle", "Hawk"}
)

// GenerateName returns a display name such as "BraveFalcon417".
func GenerateName(r *pcore.RNG) string {
	return fmt.Sprintf("%s%s%d", pcore.Pick(r, nameAdjectives), pcore.Pick(r, nameNouns), 100+r.IntN(900))
}
