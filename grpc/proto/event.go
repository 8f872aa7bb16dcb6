package proto

func NewStartedEvent(executionId string) *Event {
	return &Event{
		Event: &Event_StartedEvent{
			StartedEvent: &EventStarted{
				ExecutionId: executionId,
			},
		},
	}
}

func NewStatusEvent(rowsProcessed, rowsPassed, rowsFailed int64) *Event {
	return &Event{
		Event: &Event_StatusEvent{
			StatusEvent: &EventStatus{
				RowsProcessed: rowsProcessed,
				RowsPassed:    rowsPassed,
				RowsFailed:    rowsFailed,
			},
		},
	}
}

func NewRowProcessedEvent(executionId string, result *ResultRecord) *Event {
	return &Event{
		Event: &Event_RowProcessedEvent{
			RowProcessedEvent: &EventRowProcessed{
				ExecutionId: executionId,
				Result:      result,
			},
		},
	}
}

func NewCompleteEvent(executionId string, rowCount int, err error) *Event {
	errString := ""
	if err != nil {
		errString = err.Error()
	}
	return &Event{
		Event: &Event_CompleteEvent{
			CompleteEvent: &EventComplete{
				ExecutionId: executionId,
				RowCount:    int64(rowCount),
				Error:       errString,
			},
		},
	}
}
