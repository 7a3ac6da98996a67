package service_test

import (
	"context"

	"libraryapi/internal/model"
	"libraryapi/internal/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory stands-ins for the gorm-backed repositories, so service behavior
// can be exercised without a database.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// --- users ---

type fakeUserRepo struct {
	users         []*model.User
	roleRegistry  map[string]bool
	userRoles     map[uuid.UUID][]string
	userClaims    map[uuid.UUID][]model.UserClaim
	lookupCalls   int
	updateCalls   int
	deletedUserID uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		roleRegistry: map[string]bool{},
		userRoles:    map[uuid.UUID][]string{},
		userClaims:   map[uuid.UUID][]model.UserClaim{},
	}
}

func (r *fakeUserRepo) addUser(username, email, password string) *model.User {
	user := &model.User{ID: uuid.New(), Username: username, Email: email, Password: password}
	r.users = append(r.users, user)
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.lookupCalls++
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	res := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	return res, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.updateCalls++
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.deletedUserID = id
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) RoleExists(_ context.Context, name string) (bool, error) {
	return r.roleRegistry[name], nil
}

func (r *fakeUserRepo) GetRoles(_ context.Context, userID uuid.UUID) ([]string, error) {
	return r.userRoles[userID], nil
}

func (r *fakeUserRepo) AddRole(_ context.Context, userID uuid.UUID, name string) error {
	r.userRoles[userID] = append(r.userRoles[userID], name)
	return nil
}

func (r *fakeUserRepo) RemoveRole(_ context.Context, userID uuid.UUID, name string) error {
	held := r.userRoles[userID]
	for i, role := range held {
		if role == name {
			r.userRoles[userID] = append(held[:i], held[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) GetClaims(_ context.Context, userID uuid.UUID) ([]model.UserClaim, error) {
	return r.userClaims[userID], nil
}

func (r *fakeUserRepo) AddClaim(_ context.Context, claim *model.UserClaim) error {
	r.userClaims[claim.UserID] = append(r.userClaims[claim.UserID], *claim)
	return nil
}

func (r *fakeUserRepo) RemoveClaim(_ context.Context, userID uuid.UUID, claimType, value string) error {
	claims := r.userClaims[userID]
	for i, c := range claims {
		if c.Type == claimType && c.Value == value {
			r.userClaims[userID] = append(claims[:i], claims[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- authors ---

type fakeAuthorRepo struct {
	authors map[uint]*model.Author
	nextID  uint
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[uint]*model.Author{}, nextID: 1}
}

func (r *fakeAuthorRepo) addAuthor(name string) *model.Author {
	author := &model.Author{ID: r.nextID, Name: name}
	r.authors[author.ID] = author
	r.nextID++
	return author
}

func (r *fakeAuthorRepo) GetAll(_ context.Context) ([]model.Author, error) {
	res := make([]model.Author, 0, len(r.authors))
	for _, a := range r.authors {
		res = append(res, *a)
	}
	return res, nil
}

func (r *fakeAuthorRepo) GetAllWithIncludes(ctx context.Context) ([]model.Author, error) {
	return r.GetAll(ctx)
}

func (r *fakeAuthorRepo) GetBySpecification(ctx context.Context, _ specification.AuthorCriteria) ([]model.Author, error) {
	return r.GetAll(ctx)
}

func (r *fakeAuthorRepo) GetBySpecificationWithIncludes(ctx context.Context, _ specification.AuthorCriteria) ([]model.Author, error) {
	return r.GetAll(ctx)
}

func (r *fakeAuthorRepo) GetByID(_ context.Context, id uint) (*model.Author, error) {
	author, ok := r.authors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return author, nil
}

func (r *fakeAuthorRepo) GetByIDWithIncludes(ctx context.Context, id uint) (*model.Author, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeAuthorRepo) Create(_ context.Context, author *model.Author) error {
	author.ID = r.nextID
	r.nextID++
	r.authors[author.ID] = author
	return nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, author *model.Author) error {
	r.authors[author.ID] = author
	return nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id uint) error {
	delete(r.authors, id)
	return nil
}

// --- books ---

type fakeBookRepo struct {
	books  map[uint]*model.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uint]*model.Book{}, nextID: 1}
}

func (r *fakeBookRepo) GetAll(_ context.Context) ([]model.Book, error) {
	res := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		res = append(res, *b)
	}
	return res, nil
}

func (r *fakeBookRepo) GetAllWithIncludes(ctx context.Context) ([]model.Book, error) {
	return r.GetAll(ctx)
}

func (r *fakeBookRepo) GetBySpecification(ctx context.Context, _ specification.BookCriteria) ([]model.Book, error) {
	return r.GetAll(ctx)
}

func (r *fakeBookRepo) GetBySpecificationWithIncludes(ctx context.Context, _ specification.BookCriteria) ([]model.Book, error) {
	return r.GetAll(ctx)
}

func (r *fakeBookRepo) GetByID(_ context.Context, id uint) (*model.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return book, nil
}

func (r *fakeBookRepo) GetByIDWithIncludes(ctx context.Context, id uint) (*model.Book, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBookRepo) Create(_ context.Context, book *model.Book) error {
	book.ID = r.nextID
	r.nextID++
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *model.Book) error {
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	delete(r.books, id)
	return nil
}

// --- book-publisher associations ---

type fakeBookPublisherRepo struct {
	rows []model.BookPublisher
}

func (r *fakeBookPublisherRepo) GetAll(_ context.Context) ([]model.BookPublisher, error) {
	return r.rows, nil
}

func (r *fakeBookPublisherRepo) GetByID(_ context.Context, bookID, publisherID uint) (*model.BookPublisher, error) {
	for _, row := range r.rows {
		if row.BookID == bookID && row.PublisherID == publisherID {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBookPublisherRepo) Create(_ context.Context, bookPublisher *model.BookPublisher) error {
	r.rows = append(r.rows, *bookPublisher)
	return nil
}

func (r *fakeBookPublisherRepo) CreateRange(_ context.Context, bookPublishers []model.BookPublisher) error {
	r.rows = append(r.rows, bookPublishers...)
	return nil
}

func (r *fakeBookPublisherRepo) Delete(_ context.Context, bookID, publisherID uint) error {
	for i, row := range r.rows {
		if row.BookID == bookID && row.PublisherID == publisherID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBookPublisherRepo) DeleteByBookOrPublisher(_ context.Context, bookID, publisherID *uint) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if bookID != nil && row.BookID == *bookID {
			continue
		}
		if publisherID != nil && row.PublisherID == *publisherID {
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return nil
}
