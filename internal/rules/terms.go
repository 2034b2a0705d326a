package rules

// technicalTerms are strings that stay identical in every locale: product and
// OS names, protocols, filesystems, tools and units of UI jargon.
var technicalTerms = []string{
	// Product and platform names
	"WSL", "WSL 1", "WSL 2", "WSL1", "WSL2", "WSLg", "WSL UI",
	"Windows", "Windows 10", "Windows 11", "Windows Terminal", "Windows Subsystem for Linux",
	"Microsoft", "Microsoft Store", "Hyper-V", "PowerShell", "Command Prompt", "cmd",
	"Linux", "Ubuntu", "Debian", "Kali Linux", "openSUSE", "SUSE", "Fedora", "Alpine",
	"Arch Linux", "Oracle Linux", "AlmaLinux", "Rocky Linux", "NixOS", "Gentoo",
	"Docker", "Docker Desktop", "Podman", "Rancher Desktop", "Kubernetes",
	"GitHub", "GitLab", "Git", "VS Code", "Visual Studio Code", "Tauri", "Rust",
	"systemd", "init", "bash", "zsh", "fish", "sudo", "apt", "dnf", "pacman",
	"LXC", "OCI", "LXD",

	// Protocols, formats and networking
	"HTTP", "HTTPS", "SSH", "DNS", "DHCP", "NAT", "TCP", "UDP", "IP", "IPv4", "IPv6",
	"VPN", "URL", "URI", "API", "JSON", "YAML", "TOML", "XML", "CSV", "UTF-8",
	"localhost", "mirrored", "Mirrored",

	// Filesystems and disks
	"ext4", "NTFS", "FAT32", "exFAT", "Btrfs", "VHD", "VHDX", "9P", "DrvFs", "tar", "tar.gz",
	".wslconfig", "wsl.conf", "/etc/wsl.conf", "fstab",

	// Hardware and units
	"CPU", "GPU", "RAM", "SSD", "HDD", "vCPU", "CUDA", "DirectX", "OpenGL", "Vulkan",
	"GB", "MB", "KB", "TB", "GiB", "MiB", "KiB", "TiB",

	// Generic identifiers
	"ID", "UID", "GID", "PID", "OK", "N/A", "UUID", "GUID", "root",
}

// localeTerms are generic English words that are also correct, unchanged,
// in specific locales (loanwords and cognates). Keys are locale IDs or base
// languages; lookups try the full ID first, then the base language.
var localeTerms = map[string][]string{
	"de": {
		"Status", "Online", "Offline", "Name", "Version", "Details", "Export", "Import",
		"Administrator", "Backup", "Download", "Host", "Kernel", "Terminal", "Server",
		"Proxy", "Port", "Filter", "System", "Distribution", "Distributionen", "Installation",
		"Information", "Start", "Tag", "Tags", "Update", "Updates", "Account", "Login",
	},
	"fr": {
		"Distribution", "Distributions", "Version", "Configuration", "Message", "Messages",
		"Options", "Actions", "Description", "Documentation", "Installation", "Information",
		"Navigation", "Notifications", "Notification", "Type", "Date", "Source", "Terminal",
		"Port", "Kernel", "Applications", "Application", "Import", "Export", "Services",
	},
	"es": {
		"Error", "General", "Local", "Normal", "Total", "Terminal", "Kernel", "Host",
		"Backup", "Proxy", "Idioma",
	},
	"it": {
		"Computer", "Backup", "Download", "File", "Online", "Offline", "Desktop", "Kernel",
		"Terminal", "Host", "Proxy", "Server", "Password", "Account", "Login", "Home",
		"Distribuzione", "Test",
	},
	"pt": {
		"Status", "Backup", "Download", "Online", "Offline", "Kernel", "Terminal", "Host",
		"Proxy", "Login", "Desktop", "Software",
	},
	"nl": {
		"Status", "Online", "Offline", "Terminal", "Kernel", "Host", "Server", "Proxy",
		"Distributie", "Versie", "Details", "Export", "Import", "Backup", "Download",
		"Update", "Updates", "Filter", "Informatie", "Start",
	},
	"pl": {
		"Status", "Online", "Offline", "Kernel", "Terminal", "Host", "Proxy", "Backup",
	},
}

// commonWords are English function words. A title-cased phrase that contains
// one of them reads as a sentence rather than a proper noun.
var commonWords = []string{
	"a", "an", "the", "and", "or", "but", "nor", "of", "to", "in", "on", "at", "by",
	"for", "with", "from", "into", "onto", "over", "under", "about", "as", "is", "are",
	"was", "were", "be", "been", "not", "no", "yes", "your", "you", "my", "our", "this",
	"that", "these", "those", "all", "any", "some", "new", "now", "has", "have", "will",
	"can", "if", "it", "its", "up", "out", "off", "then", "than", "when", "what", "how",
}
