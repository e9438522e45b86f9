package i18n

// koreanSet is intentionally partial; anything missing falls back to the
// English base when the sets are merged
func koreanSet() TranslationSet {
	return TranslationSet{
		Welcome:           "llce에 오신 것을 환영합니다 - 리눅스용 커맨드라인 치트 엔진입니다.",
		Goodbye:           "llce를 종료합니다. 안녕히 가세요!",
		AvailableCommands: "사용 가능한 명령어:",
		UnknownCommand:    "알 수 없는 명령어: %s",
		NotAttached:       "'attach' 명령어로 먼저 프로세스에 연결해야 합니다.",
		NoScanData:        "두 번의 스캔이 필요합니다. 'attach' 후 'fullscan'을 실행하세요.",
		NoSearchData:      "스캔 데이터가 없습니다. 'attach'를 사용하세요.",
		ProcessNotFound:   "PID %d인 프로세스가 존재하지 않습니다.",
		DetectingChanges:  "변경 사항을 감지하는 중...",
		DetectedChanges:   "%d개의 변경 사항을 감지했습니다.",
		FullscanComplete:  "전체 스캔이 완료되었습니다. %d개의 영역을 찾았습니다.",
	}
}
