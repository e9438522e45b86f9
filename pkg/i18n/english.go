package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		Welcome:             "Welcome to llce - the command-line cheat engine for Linux.",
		Goodbye:             "Exiting llce. Goodbye!",
		AvailableCommands:   "Available commands:",
		TypesLine:           "Types: byte, word, dword, qword",
		HelpAttach:          "Attach to a process and run initial scan.",
		HelpFullscan:        "Perform a new scan to compare against.",
		HelpDetect:          "Show changes between the previous and latest scan. Add 'page' to page through all of them.",
		HelpSearch:          "Search for a value in the latest scan.",
		HelpPoke:            "Write a value into target memory.",
		HelpHelp:            "Show this help message.",
		HelpExit:            "Close the application.",
		UsageAttach:         "Usage: attach <pid>",
		UsageSearch:         "Usage: search <type> <value>",
		UsagePoke:           "Usage: poke <addr> <type> <value>",
		InvalidDetectArg:    "Invalid argument for 'detect'. Use 'detect page' to page through all changes.",
		UnknownCommand:      "Unknown command: %s",
		NotAttached:         "You must attach to a process first using 'attach'.",
		NoScanData:          "Two scans are required. Use 'attach' then 'fullscan'.",
		NoSearchData:        "No scan data available. Use 'attach'.",
		ProcessNotFound:     "Process with PID %d does not exist.",
		InvalidPID:          "Invalid PID: %s",
		AttachingTo:         "Attaching to PID %d. Performing initial scan...",
		AttachFailed:        "Failed to perform initial scan for PID %d: %v",
		InitialScanComplete: "Attached to %s. Initial scan found %d readable/writable regions.",
		PostAttachHint:      "You can now run 'search' or perform a 'fullscan' for comparison.",
		PerformingScan:      "Performing next scan on %s... (PID: %d)",
		FullscanFailed:      "Failed to perform the fullscan: %v",
		FullscanComplete:    "Full scan completed successfully. %d regions found.",
		PostFullscanHint:    "You can now run 'detect' to see changes.",
		DetectingChanges:    "Detecting changes...",
		DetectedChanges:     "Detected %d changes.",
		OutputTruncated:     "  ... (output truncated, try 'detect page')",
		FoundMatches:        "Found %d matches for value %d (0x%x).",
		WroteValue:          "Wrote %s %s -> 0x%x",
		PokeFailed:          "poke failed: %v",
		PagerFailed:         "failed to run pager: %v",
		PermissionDenied:    "Permission denied by the kernel. Run as the target's owner or with CAP_SYS_PTRACE, and check /proc/sys/kernel/yama/ptrace_scope.",
		ErrorOccurred:       "An error occurred! Please create an issue at https://github.com/KnightChaser/llce/issues",
		NotLittleEndian:     "llce only supports little-endian hosts",
	}
}
