package business

// KnowledgeService stubs the knowledge base.
type KnowledgeService struct{}

func NewKnowledgeService() *KnowledgeService { return &KnowledgeService{} }

func (s *KnowledgeService) DocumentCenter(query string) Payload {
	return Payload{"action": "document_center", "query": query}
}

func (s *KnowledgeService) FAQ(question string) Payload {
	return Payload{"action": "faq", "question": question}
}

func (s *KnowledgeService) Tag(articleID int, tag string) Payload {
	return Payload{"action": "knowledge_tag", "article_id": articleID, "tag": tag}
}

func (s *KnowledgeService) Search(keyword string) Payload {
	return Payload{"action": "knowledge_search", "keyword": keyword, "hits": 0}
}

// LearningService stubs courses and exams.
type LearningService struct{}

func NewLearningService() *LearningService { return &LearningService{} }

func (s *LearningService) Course(payload Payload) Payload {
	return Payload{"action": "course", "payload": payload}
}

func (s *LearningService) Progress(userID, courseID int) Payload {
	return Payload{"action": "progress", "user_id": userID, "course_id": courseID}
}

func (s *LearningService) Exam(payload Payload) Payload {
	return Payload{"action": "exam", "payload": payload, "status": "scheduled"}
}

func (s *LearningService) Certificate(userID, courseID int) Payload {
	return Payload{"action": "certificate", "user_id": userID, "course_id": courseID}
}
