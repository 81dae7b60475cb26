package room

import "github.com/m04kA/SMC-HearingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
