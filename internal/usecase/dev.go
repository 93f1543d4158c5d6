package usecase

import (
	"log/slog"

	"github.com/3-lines-studio/multipage/internal/core"
)

type DevRequestOutput struct {
	Decision core.DevDecision
	HTML     string
}

// DevService answers dev-server requests from the route rule table.
type DevService struct {
	rules  core.RuleTable
	fs     FileSystem
	root   string
	logger *slog.Logger
}

func NewDevService(rules core.RuleTable, fs FileSystem, root string, logger *slog.Logger) *DevService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DevService{
		rules:  rules,
		fs:     fs,
		root:   core.SlashPath(root),
		logger: logger,
	}
}

func (s *DevService) HandleRequest(requestPath string) (DevRequestOutput, error) {
	decision := core.DecideDevRequest(s.rules, requestPath)

	switch decision.Action {
	case core.DevRewrite:
		s.logger.Debug("dev rewrite", "request", requestPath, "target", decision.RewritePath)
		return DevRequestOutput{Decision: decision}, nil

	case core.DevSynthesize:
		html, err := synthesize(s.fs, s.logger, core.JoinRoot(s.root, decision.Rule.Template), decision.ScriptSrc)
		if err != nil {
			return DevRequestOutput{Decision: decision}, err
		}
		s.logger.Debug("dev synthesize", "request", requestPath, "template", decision.Rule.Template, "src", decision.ScriptSrc)
		return DevRequestOutput{Decision: decision, HTML: html}, nil
	}

	return DevRequestOutput{Decision: decision}, nil
}
