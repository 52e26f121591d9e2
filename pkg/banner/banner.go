package banner

import (
	"fmt"

	"chatkv/pkg/config"
)

const banner = `
 ██████╗██╗  ██╗ █████╗ ████████╗██╗  ██╗██╗   ██╗
██╔════╝██║  ██║██╔══██╗╚══██╔══╝██║ ██╔╝██║   ██║
██║     ███████║███████║   ██║   █████╔╝ ██║   ██║
██║     ██╔══██║██╔══██║   ██║   ██╔═██╗ ╚██╗ ██╔╝
╚██████╗██║  ██║██║  ██║   ██║   ██║  ██╗ ╚████╔╝
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝  ╚═══╝
`

// PrintWithEff prints the startup banner with the effective config and
// version info.
func PrintWithEff(eff config.EffectiveConfigResult, version string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", eff.Addr)
	fmt.Printf("DB Path:  %s\n", eff.DBPath)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	fmt.Printf("Config:   %s\n", eff.Source)
	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("POST /signup         - Register an account (username, email, password)")
	fmt.Println("POST /login          - Authenticate, returns userId")
	fmt.Println("POST /send-message   - Send a direct or group message")
	fmt.Println("GET  /messages       - List one conversation or group log")
	fmt.Println("POST /create-group   - Create a group")
	fmt.Println("POST /delete-group   - Delete a group and its messages")
	fmt.Println("POST /remove         - Remove an account and authored messages")
	fmt.Println("GET  /delete         - Purge a namespace (type=accounts|msgs)")
	fmt.Println("GET  /users-messaged - Last message per peer")
	fmt.Println("\n== Examples ===================================================")
	fmt.Printf("curl -X POST 'http://localhost%s/signup' -d '{\"username\":\"ada\",\"email\":\"ada@example.com\",\"password\":\"pw\"}'\n", eff.Addr)
	fmt.Printf("curl 'http://localhost%s/messages?groupName=general'\n", eff.Addr)
}
