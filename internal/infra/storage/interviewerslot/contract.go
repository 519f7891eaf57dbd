package interviewerslot

import "github.com/m04kA/SMC-InterviewPlanning/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.Executor
