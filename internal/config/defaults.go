package config

const (
	defaultLogDir       = "~/.local/share/manifestprep/logs"
	defaultLedgerPath   = "~/.local/share/manifestprep/ledger.db"
	defaultSourceLang   = "eng"
	defaultTargetLang   = "eng"
	defaultSamplingRate = 16000
	defaultPattern      = "combined_transcripts_audio_chunks_*.jsonl"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Defaults: Defaults{
			SourceLang:   defaultSourceLang,
			TargetLang:   defaultTargetLang,
			SamplingRate: defaultSamplingRate,
			Pattern:      defaultPattern,
			// Workers of zero means one worker per CPU core.
			Workers: 0,
		},
		Ledger: Ledger{
			Enabled: true,
			Path:    defaultLedgerPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
