package testutil

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users map[string]*domain.User
	ByID  map[uuid.UUID]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name *string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:        uuid.New(),
		Auth0ID:   auth0ID,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	InUse      map[int32]bool
	NextID     int32
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		InUse:      make(map[int32]bool),
		NextID:     1,
	}
}

// Create inserts a category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	category.ID = m.NextID
	category.CreatedAt = time.Now()
	m.NextID++
	m.Categories[category.ID] = category
	return category, nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(id int32) (*domain.Category, error) {
	if category, ok := m.Categories[id]; ok {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetByName retrieves a category by name
func (m *MockCategoryRepository) GetByName(name string) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll lists all categories ordered by name
func (m *MockCategoryRepository) GetAll() ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// Update rewrites a category's mutable fields
func (m *MockCategoryRepository) Update(id int32, name string, color string, description *string) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	category.Name = name
	category.Color = color
	category.Description = description
	return category, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(id int32) error {
	if _, ok := m.Categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// HasTransactions reports whether the category is referenced by transactions
func (m *MockCategoryRepository) HasTransactions(id int32) (bool, error) {
	return m.InUse[id], nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) *domain.Category {
	if category.ID == 0 {
		category.ID = m.NextID
		m.NextID++
	} else if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
	m.Categories[category.ID] = category
	return category
}

// MockTransactionRepository is a mock implementation of
// domain.TransactionRepository. GetByUser applies filters the same way the
// SQL implementation does, so spend computations behave identically.
type MockTransactionRepository struct {
	Transactions map[int32]*domain.Transaction
	NextID       int32
	CreateErr    error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int32]*domain.Transaction),
		NextID:       1,
	}
}

// Create inserts a transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	transaction.ID = m.NextID
	transaction.CreatedAt = time.Now()
	m.NextID++
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// GetByID retrieves a transaction by ID, scoped to its owner
func (m *MockTransactionRepository) GetByID(userID uuid.UUID, id int32) (*domain.Transaction, error) {
	transaction, ok := m.Transactions[id]
	if !ok || transaction.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return transaction, nil
}

// GetByUser lists a user's transactions with filters applied, newest first
func (m *MockTransactionRepository) GetByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	transactions := make([]*domain.Transaction, 0)
	for _, t := range m.Transactions {
		if t.UserID != userID {
			continue
		}
		if filters != nil {
			if filters.CategoryID != nil && t.CategoryID != *filters.CategoryID {
				continue
			}
			if filters.StartDate != nil && t.OccurredAt.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && t.OccurredAt.After(*filters.EndDate) {
				continue
			}
			if filters.Type != nil && t.Type != *filters.Type {
				continue
			}
		}
		transactions = append(transactions, t)
	}
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].OccurredAt.Equal(transactions[j].OccurredAt) {
			return transactions[i].ID > transactions[j].ID
		}
		return transactions[i].OccurredAt.After(transactions[j].OccurredAt)
	})
	return transactions, nil
}

// Update rewrites a transaction's mutable fields
func (m *MockTransactionRepository) Update(userID uuid.UUID, id int32, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	transaction, err := m.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	transaction.CategoryID = data.CategoryID
	transaction.Amount = data.Amount
	transaction.Type = data.Type
	transaction.Description = data.Description
	transaction.Notes = data.Notes
	transaction.OccurredAt = data.OccurredAt
	return transaction, nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(userID uuid.UUID, id int32) error {
	if _, err := m.GetByID(userID, id); err != nil {
		return err
	}
	delete(m.Transactions, id)
	return nil
}

// SetReceiptKey updates a transaction's receipt key
func (m *MockTransactionRepository) SetReceiptKey(userID uuid.UUID, id int32, key *string) error {
	transaction, err := m.GetByID(userID, id)
	if err != nil {
		return err
	}
	transaction.ReceiptKey = key
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) *domain.Transaction {
	if transaction.ID == 0 {
		transaction.ID = m.NextID
		m.NextID++
	} else if transaction.ID >= m.NextID {
		m.NextID = transaction.ID + 1
	}
	m.Transactions[transaction.ID] = transaction
	return transaction
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets   map[int32]*domain.Budget
	NextID    int32
	UpdateErr error
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[int32]*domain.Budget),
		NextID:  1,
	}
}

// Create inserts a budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	budget.ID = m.NextID
	budget.CreatedAt = time.Now()
	m.NextID++
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget by ID, scoped to its owner
func (m *MockBudgetRepository) GetByID(userID uuid.UUID, id int32) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

// GetByUser lists a user's budgets
func (m *MockBudgetRepository) GetByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	budgets := make([]*domain.Budget, 0)
	for _, b := range m.Budgets {
		if b.UserID == userID {
			budgets = append(budgets, b)
		}
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].ID < budgets[j].ID })
	return budgets, nil
}

// GetByUserCoveringDate lists budgets whose window contains the date
func (m *MockBudgetRepository) GetByUserCoveringDate(userID uuid.UUID, date time.Time) ([]*domain.Budget, error) {
	budgets := make([]*domain.Budget, 0)
	for _, b := range m.Budgets {
		if b.UserID == userID && b.ContainsDate(date) {
			budgets = append(budgets, b)
		}
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].ID < budgets[j].ID })
	return budgets, nil
}

// Update rewrites a budget row
func (m *MockBudgetRepository) Update(budget *domain.Budget) (*domain.Budget, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if _, ok := m.Budgets[budget.ID]; !ok {
		return nil, domain.ErrBudgetNotFound
	}
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(userID uuid.UUID, id int32) error {
	if _, err := m.GetByID(userID, id); err != nil {
		return err
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) *domain.Budget {
	if budget.ID == 0 {
		budget.ID = m.NextID
		m.NextID++
	} else if budget.ID >= m.NextID {
		m.NextID = budget.ID + 1
	}
	m.Budgets[budget.ID] = budget
	return budget
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals  map[int32]*domain.Goal
	NextID int32
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		Goals:  make(map[int32]*domain.Goal),
		NextID: 1,
	}
}

// Create inserts a goal
func (m *MockGoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = m.NextID
	goal.CreatedAt = time.Now()
	m.NextID++
	m.Goals[goal.ID] = goal
	return goal, nil
}

// GetByID retrieves a goal by ID, scoped to its owner
func (m *MockGoalRepository) GetByID(userID uuid.UUID, id int32) (*domain.Goal, error) {
	goal, ok := m.Goals[id]
	if !ok || goal.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	return goal, nil
}

// GetByUser lists all goals for a user
func (m *MockGoalRepository) GetByUser(userID uuid.UUID) ([]*domain.Goal, error) {
	goals := make([]*domain.Goal, 0)
	for _, g := range m.Goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

// GetByUserAndStatus lists a user's goals in the given status
func (m *MockGoalRepository) GetByUserAndStatus(userID uuid.UUID, status domain.GoalStatus) ([]*domain.Goal, error) {
	goals := make([]*domain.Goal, 0)
	for _, g := range m.Goals {
		if g.UserID == userID && g.Status == status {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

// CountByUserAndStatus counts a user's goals in the given status
func (m *MockGoalRepository) CountByUserAndStatus(userID uuid.UUID, status domain.GoalStatus) (int64, error) {
	var count int64
	for _, g := range m.Goals {
		if g.UserID == userID && g.Status == status {
			count++
		}
	}
	return count, nil
}

// SearchByName finds a user's goals whose name contains the keyword,
// case-insensitively
func (m *MockGoalRepository) SearchByName(userID uuid.UUID, keyword string) ([]*domain.Goal, error) {
	keyword = strings.ToLower(keyword)
	goals := make([]*domain.Goal, 0)
	for _, g := range m.Goals {
		if g.UserID == userID && strings.Contains(strings.ToLower(g.Name), keyword) {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

// Update rewrites a goal row
func (m *MockGoalRepository) Update(goal *domain.Goal) (*domain.Goal, error) {
	if _, ok := m.Goals[goal.ID]; !ok {
		return nil, domain.ErrGoalNotFound
	}
	m.Goals[goal.ID] = goal
	return goal, nil
}

// Delete removes a goal
func (m *MockGoalRepository) Delete(userID uuid.UUID, id int32) error {
	if _, err := m.GetByID(userID, id); err != nil {
		return err
	}
	delete(m.Goals, id)
	return nil
}

// AddGoal adds a goal to the mock repository (helper for tests)
func (m *MockGoalRepository) AddGoal(goal *domain.Goal) *domain.Goal {
	if goal.ID == 0 {
		goal.ID = m.NextID
		m.NextID++
	} else if goal.ID >= m.NextID {
		m.NextID = goal.ID + 1
	}
	m.Goals[goal.ID] = goal
	return goal
}

// MockNotificationRepository is a mock implementation of
// domain.NotificationRepository
type MockNotificationRepository struct {
	Notifications []*domain.Notification
	NextID        int32
	CreateErr     error
}

// NewMockNotificationRepository creates a new MockNotificationRepository
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{NextID: 1}
}

// Create appends a notification
func (m *MockNotificationRepository) Create(notification *domain.Notification) (*domain.Notification, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	notification.ID = m.NextID
	notification.CreatedAt = time.Now()
	m.NextID++
	m.Notifications = append(m.Notifications, notification)
	return notification, nil
}

// GetByUser lists a user's notifications, newest first
func (m *MockNotificationRepository) GetByUser(userID uuid.UUID) ([]*domain.Notification, error) {
	notifications := make([]*domain.Notification, 0)
	for i := len(m.Notifications) - 1; i >= 0; i-- {
		if m.Notifications[i].UserID == userID {
			notifications = append(notifications, m.Notifications[i])
		}
	}
	return notifications, nil
}

// CountUnread counts a user's unread notifications
func (m *MockNotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range m.Notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marks a notification as read
func (m *MockNotificationRepository) MarkRead(userID uuid.UUID, id int32) error {
	for _, n := range m.Notifications {
		if n.UserID == userID && n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// MessagesFor returns the messages emitted for a user in emission order
// (helper for tests)
func (m *MockNotificationRepository) MessagesFor(userID uuid.UUID) []string {
	messages := make([]string, 0)
	for _, n := range m.Notifications {
		if n.UserID == userID {
			messages = append(messages, n.Message)
		}
	}
	return messages
}

// FakeReceiptStorage is an in-memory implementation of
// storage.ReceiptRepository
type FakeReceiptStorage struct {
	Objects map[string][]byte
}

// NewFakeReceiptStorage creates a new FakeReceiptStorage
func NewFakeReceiptStorage() *FakeReceiptStorage {
	return &FakeReceiptStorage{Objects: make(map[string][]byte)}
}

// Upload stores an object in memory
func (f *FakeReceiptStorage) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) error {
	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.Objects[objectPath] = buf
	return nil
}

// Delete removes an object
func (f *FakeReceiptStorage) Delete(ctx context.Context, objectPath string) error {
	delete(f.Objects, objectPath)
	return nil
}

// GeneratePresignedURL returns a deterministic fake URL
func (f *FakeReceiptStorage) GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.local/%s", objectPath), nil
}
