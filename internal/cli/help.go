package cli

import (
	"fmt"

	"github.com/xonecas/autotyper/internal/styles"
)

// PrintVersion displays the version information.
func PrintVersion(version string) {
	fmt.Printf("AutoTyper %s\n", version)
}

// PrintHelp displays usage information with CLI styling.
func PrintHelp(version string) {
	fmt.Println(styles.Brand.Render("╔══════════════════════════════════════╗"))
	fmt.Println(styles.Brand.Render("║") + "  " + styles.BrandBold.Render("AutoTyper") + " - Shortcut Keystrokes      " + styles.Brand.Render("║"))
	fmt.Println(styles.Brand.Render("╚══════════════════════════════════════╝"))
	fmt.Println()
	fmt.Println(styles.BrandBold.Render("USAGE:"))
	fmt.Println("  autotyper [flags] TOKEN...")
	fmt.Println()
	fmt.Println("  Each TOKEN is NAME, NAME<count> or NAME<low>..<high>, where NAME is a")
	fmt.Println("  sequence or combination from the definitions file. Tokens are expanded")
	fmt.Println("  and typed in order.")
	fmt.Println()
	fmt.Println(styles.BrandBold.Render("FLAGS:"))
	fmt.Println("  " + styles.Secondary.Render("-h, --help") + "            Show this help message")
	fmt.Println("  " + styles.Secondary.Render("-v, --version") + "         Show version information")
	fmt.Println("  " + styles.Secondary.Render("-c, --config") + " PATH     Path to definitions file")
	fmt.Println("  " + styles.Secondary.Render("-d, --delay") + " MS        Delay between keystrokes (default: 50)")
	fmt.Println("  " + styles.Secondary.Render("-t, --typer") + " NAME      Backend: xdotool, wtype, print (default: xdotool)")
	fmt.Println("  " + styles.Secondary.Render("-n, --dry-run") + "         Print expansions instead of typing")
	fmt.Println("  " + styles.Secondary.Render("-l, --list") + "            List all defined names and exit")
	fmt.Println("  " + styles.Secondary.Render("-L, --list-full") + "       List names with their expansion and exit")
	fmt.Println("  " + styles.Secondary.Render("    --debug") + "           Enable debug logging")
	fmt.Println()
	fmt.Println(styles.BrandBold.Render("EXAMPLES:"))
	fmt.Println("  # Type the expansion of the \"mail\" sequence twice")
	fmt.Println("  autotyper mail2")
	fmt.Println()
	fmt.Println("  # Type \"greet\" then 3 to 6 repetitions of \"filler\"")
	fmt.Println("  autotyper greet filler3..6")
	fmt.Println()
	fmt.Println("  # Preview without touching the keyboard")
	fmt.Println("  autotyper -n greet")
	fmt.Println()
	fmt.Println("  # Wayland session")
	fmt.Println("  autotyper -t wtype greet")
	fmt.Println()
	fmt.Println(styles.Muted.Render("Definitions are read from autotyper.json (or .toml) in the working"))
	fmt.Println(styles.Muted.Render("directory or ~/.config/autotyper/. Names starting with _ are hidden"))
	fmt.Println(styles.Muted.Render("from listings."))
	fmt.Println()
}
