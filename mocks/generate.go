package mocks

//go:generate mockgen -destination=./mock_trading.go -package=mocks github.com/quantpipe/quantpipe/internal/trading PositionReader,CandleRepository,TradeExecutor,OrderExecutor,OrderStore,OrderTx,ExecutionLogWriter
