package server

import (
	"github.com/google/wire"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/data"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/service"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/usecase"
)

// ProviderSet 是策略助手服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewStrategyEngine,

	// Data providers
	data.NewData,
	data.NewReportRepo,
	data.NewResultCache,

	// UseCase providers
	usecase.NewResearchUseCase,
	usecase.NewHistoryUseCase,

	// Service providers
	service.NewStrategyService,
)
