package native

// Version is the bridge release version reported by the CLI.
const Version = "0.2.0"
