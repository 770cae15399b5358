package business

// IntegrationService stubs API-gateway, messaging and data-integration operations.
type IntegrationService struct{}

func NewIntegrationService() *IntegrationService { return &IntegrationService{} }

func (s *IntegrationService) APIGatewayRoute(request Payload) Payload {
	return Payload{"action": "api_gateway_route", "request": request}
}

func (s *IntegrationService) ManageToken(tokenID string) Payload {
	return Payload{"action": "manage_token", "token_id": tokenID}
}

func (s *IntegrationService) RateLimit(clientID string, limit int) Payload {
	return Payload{"action": "rate_limit", "client_id": clientID, "limit": limit}
}

func (s *IntegrationService) KafkaEnqueue(topic string, payload any) Payload {
	return Payload{"action": "kafka_enqueue", "topic": topic, "payload": payload, "status": "queued"}
}

func (s *IntegrationService) RabbitMQEnqueue(queue string, payload any) Payload {
	return Payload{"action": "rabbitmq_enqueue", "queue": queue, "payload": payload, "status": "queued"}
}

func (s *IntegrationService) ScheduleJob(name, cron string) Payload {
	return Payload{"action": "schedule_job", "name": name, "cron": cron}
}

func (s *IntegrationService) WorkflowBPMN(definition string) Payload {
	return Payload{"action": "workflow_bpmn", "definition": definition}
}

func (s *IntegrationService) ESBConnect(system string) Payload {
	return Payload{"action": "esb_connect", "system": system}
}

func (s *IntegrationService) DataTransform(mapping map[string]string) Payload {
	return Payload{"action": "data_transform", "fields": len(mapping)}
}

func (s *IntegrationService) DataWarehouseSync() Payload {
	return Payload{"action": "data_warehouse_sync", "status": "ok"}
}

func (s *IntegrationService) DataQualityCheck() Payload {
	return Payload{"action": "data_quality_check", "status": "ok"}
}

func (s *IntegrationService) DataSyncTask(source, target string) Payload {
	return Payload{"action": "data_sync_task", "source": source, "target": target}
}
