package lsp

import (
	"encoding/json"

	"glint/internal/check"
	"glint/internal/config"
	"glint/internal/lexer"
)

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	if !s.applySettings(params.Settings) {
		return nil
	}
	return s.reanalyzeOpen()
}

// applySettings merges client settings; reports whether analysis options changed.
func (s *Server) applySettings(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logf("ignoring malformed settings: %v", err)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	if c := settings.Glint.Lexer.Comment; c != nil {
		style, err := lexer.ParseCommentStyle(*c)
		if err != nil {
			s.logf("glint.lexer.comment: %v", err)
		} else if style != s.analysisOpts.Lexer.Comment {
			s.analysisOpts.Lexer.Comment = style
			changed = true
		}
	}
	if m := settings.Glint.Diagnostics.Max; m != nil {
		limit := *m
		if limit == 0 {
			limit = check.DefaultMax
		}
		if limit != s.analysisOpts.Check.Max {
			s.analysisOpts.Check.Max = limit
			changed = true
		}
	}
	if t := settings.Glint.LSP.Trace; t != nil {
		s.traceLSP = *t
	}
	return changed
}

// applyWorkspaceConfig loads the glint.toml nearest to root. Client settings
// from initializationOptions are applied afterwards and win.
func (s *Server) applyWorkspaceConfig(root string) {
	cfg, err := config.Discover(root)
	if err != nil {
		s.logf("workspace config: %v", err)
		return
	}
	if cfg.Path == "" {
		return
	}
	s.mu.Lock()
	s.analysisOpts.Lexer = cfg.LexerOptions()
	s.analysisOpts.Check.Max = cfg.Diagnostics.Max
	s.evictOnClose = cfg.Server.EvictOnClose
	s.mu.Unlock()
	s.logf("using %s for workspace %s", cfg.Path, root)
}
