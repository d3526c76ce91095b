package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gavel/internal/model"
	"gavel/pkg/generic"
)

// In-memory repository implementations. They back the unit tests and satisfy
// the same interfaces as the Mongo implementations, including replace (not
// merge) update semantics and soft-delete filtering.

// MemClientRepository is an in-memory IClientRepository.
type MemClientRepository struct {
	mu      sync.Mutex
	clients map[string]*model.Client
}

func NewMemClientRepository() *MemClientRepository {
	return &MemClientRepository{clients: make(map[string]*model.Client)}
}

func (r *MemClientRepository) Create(_ context.Context, client *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client.SetID(primitive.NewObjectID())
	cp := *client
	r.clients[client.ID.Hex()] = &cp
	return nil
}

func (r *MemClientRepository) GetByID(_ context.Context, id string) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	cp := *client
	return &cp, nil
}

func (r *MemClientRepository) Replace(_ context.Context, client *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID.Hex()]; !ok {
		return generic.ErrNotFound
	}
	cp := *client
	r.clients[client.ID.Hex()] = &cp
	return nil
}

func (r *MemClientRepository) FindByEmail(_ context.Context, email string) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, client := range r.clients {
		if client.Email == email {
			cp := *client
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemClientRepository) FindActive(_ context.Context) ([]*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Client
	for _, client := range r.clients {
		if !client.Deleted {
			cp := *client
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemClientRepository) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[id]
	if !ok {
		return generic.ErrNotFound
	}
	client.Deleted = true
	client.UpdatedAt = time.Now()
	return nil
}

// Len reports the number of stored records, deleted included.
func (r *MemClientRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// MemCandidateRepository is an in-memory ICandidateRepository.
type MemCandidateRepository struct {
	mu         sync.Mutex
	candidates map[string]*model.Candidate
}

func NewMemCandidateRepository() *MemCandidateRepository {
	return &MemCandidateRepository{candidates: make(map[string]*model.Candidate)}
}

func (r *MemCandidateRepository) Create(_ context.Context, candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate.SetID(primitive.NewObjectID())
	cp := *candidate
	r.candidates[candidate.ID.Hex()] = &cp
	return nil
}

func (r *MemCandidateRepository) GetByID(_ context.Context, id string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	cp := *candidate
	return &cp, nil
}

func (r *MemCandidateRepository) Replace(_ context.Context, candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[candidate.ID.Hex()]; !ok {
		return generic.ErrNotFound
	}
	cp := *candidate
	r.candidates[candidate.ID.Hex()] = &cp
	return nil
}

func (r *MemCandidateRepository) FindByEmail(_ context.Context, email string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, candidate := range r.candidates {
		if candidate.Email == email {
			cp := *candidate
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemCandidateRepository) FindActive(_ context.Context) ([]*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Candidate
	for _, candidate := range r.candidates {
		if !candidate.Deleted {
			cp := *candidate
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemCandidateRepository) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[id]
	if !ok {
		return generic.ErrNotFound
	}
	candidate.Deleted = true
	candidate.UpdatedAt = time.Now()
	return nil
}

func (r *MemCandidateRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.candidates)
}

// MemAdminRepository is an in-memory IAdminRepository.
type MemAdminRepository struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
}

func NewMemAdminRepository() *MemAdminRepository {
	return &MemAdminRepository{admins: make(map[string]*model.Admin)}
}

func (r *MemAdminRepository) Create(_ context.Context, admin *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.SetID(primitive.NewObjectID())
	cp := *admin
	r.admins[admin.ID.Hex()] = &cp
	return nil
}

func (r *MemAdminRepository) GetByID(_ context.Context, id string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	cp := *admin
	return &cp, nil
}

func (r *MemAdminRepository) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemAdminRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.admins)
}

// MemCompanyRepository is an in-memory ICompanyRepository.
type MemCompanyRepository struct {
	mu        sync.Mutex
	companies map[string]*model.Company
}

func NewMemCompanyRepository() *MemCompanyRepository {
	return &MemCompanyRepository{companies: make(map[string]*model.Company)}
}

func (r *MemCompanyRepository) Create(_ context.Context, company *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	company.SetID(primitive.NewObjectID())
	cp := *company
	r.companies[company.ID.Hex()] = &cp
	return nil
}

func (r *MemCompanyRepository) GetByID(_ context.Context, id string) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	cp := *company
	return &cp, nil
}

func (r *MemCompanyRepository) Replace(_ context.Context, company *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.ID.Hex()]; !ok {
		return generic.ErrNotFound
	}
	cp := *company
	r.companies[company.ID.Hex()] = &cp
	return nil
}

func (r *MemCompanyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return generic.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

func (r *MemCompanyRepository) FindByName(_ context.Context, name string) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, company := range r.companies {
		if company.Name == name {
			cp := *company
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemCompanyRepository) FindAll(_ context.Context) ([]*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Company
	for _, company := range r.companies {
		cp := *company
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemCompanyRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[primitive.ObjectID]*model.Company, len(ids))
	for _, id := range ids {
		if company, ok := r.companies[id.Hex()]; ok {
			cp := *company
			out[id] = &cp
		}
	}
	return out, nil
}

// MemPositionRepository is an in-memory IPositionRepository.
type MemPositionRepository struct {
	mu        sync.Mutex
	positions map[string]*model.Position
}

func NewMemPositionRepository() *MemPositionRepository {
	return &MemPositionRepository{positions: make(map[string]*model.Position)}
}

func (r *MemPositionRepository) Create(_ context.Context, position *model.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	position.SetID(primitive.NewObjectID())
	cp := *position
	r.positions[position.ID.Hex()] = &cp
	return nil
}

func (r *MemPositionRepository) GetByID(_ context.Context, id string) (*model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	position, ok := r.positions[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	cp := *position
	return &cp, nil
}

func (r *MemPositionRepository) Replace(_ context.Context, position *model.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[position.ID.Hex()]; !ok {
		return generic.ErrNotFound
	}
	cp := *position
	r.positions[position.ID.Hex()] = &cp
	return nil
}

func (r *MemPositionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[id]; !ok {
		return generic.ErrNotFound
	}
	delete(r.positions, id)
	return nil
}

func (r *MemPositionRepository) FindAll(_ context.Context) ([]*model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Position
	for _, position := range r.positions {
		cp := *position
		out = append(out, &cp)
	}
	return out, nil
}

// MemInterviewRepository is an in-memory IInterviewRepository.
type MemInterviewRepository struct {
	mu         sync.Mutex
	interviews map[string]*model.Interview
}

func NewMemInterviewRepository() *MemInterviewRepository {
	return &MemInterviewRepository{interviews: make(map[string]*model.Interview)}
}

func (r *MemInterviewRepository) Create(_ context.Context, interview *model.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	interview.SetID(primitive.NewObjectID())
	cp := *interview
	r.interviews[interview.ID.Hex()] = &cp
	return nil
}

func (r *MemInterviewRepository) GetByID(_ context.Context, id string) (*model.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	interview, ok := r.interviews[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	cp := *interview
	return &cp, nil
}

func (r *MemInterviewRepository) Exists(_ context.Context, candidateID, positionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, interview := range r.interviews {
		if interview.CandidateID == candidateID && interview.PositionID == positionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemInterviewRepository) FindByCandidate(_ context.Context, candidateID string, skip, limit int64) ([]*model.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*model.Interview
	for _, interview := range r.interviews {
		if interview.CandidateID == candidateID {
			cp := *interview
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if skip >= int64(len(matched)) {
		return []*model.Interview{}, nil
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemInterviewRepository) CountByCandidate(_ context.Context, candidateID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, interview := range r.interviews {
		if interview.CandidateID == candidateID {
			total++
		}
	}
	return total, nil
}

func (r *MemInterviewRepository) FindAll(_ context.Context) ([]*model.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Interview, 0, len(r.interviews))
	for _, interview := range r.interviews {
		cp := *interview
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemInterviewRepository) SetReviewStatus(_ context.Context, id string, status model.ReviewStatus) (*model.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	interview, ok := r.interviews[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	interview.ReviewStatus = status
	interview.UpdatedAt = time.Now()
	cp := *interview
	return &cp, nil
}
