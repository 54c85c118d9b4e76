package meal

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/entities"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	uploaded map[string][]byte
	deleted  []string
	err      error
}

func (f *fakeS3) UploadFile(_ context.Context, fileName string, data []byte, _ string, folder string, _ ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	key := folder + "/" + fileName + ".jpg"
	f.uploaded[key] = data
	return key, nil
}

func (f *fakeS3) DeleteFile(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	delete(f.uploaded, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://cdn.test/")
}

type failingRepository struct {
	MealRepository
}

func (failingRepository) CreateMeal(context.Context, *entities.Meal) error {
	return errors.New("connection reset")
}

var fixedNow = time.Date(2024, 3, 13, 21, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, s3 *fakeS3) MealService {
	t.Helper()
	var svc *mealService
	if s3 == nil {
		svc = NewMealService(NewMealRepository(newTestDB(t)), nil, time.UTC).(*mealService)
	} else {
		svc = NewMealService(NewMealRepository(newTestDB(t)), s3, time.UTC).(*mealService)
	}
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validRequest() domain.CreateMealRequest {
	return domain.CreateMealRequest{
		Name:     "Chicken & Rice",
		Date:     "2024-03-13",
		Calories: 650,
		Protein:  45,
		Carbs:    70,
		Fats:     15,
	}
}

func TestCreateMeal(t *testing.T) {
	svc := newTestService(t, nil)
	user := uuid.NewString()

	res, err := svc.CreateMeal(context.Background(), validRequest(), user)
	require.NoError(t, err)
	_, err = uuid.Parse(res.ID)
	require.NoError(t, err)

	got, err := svc.GetMealByID(context.Background(), res.ID, user)
	require.NoError(t, err)
	assert.Equal(t, "Chicken & Rice", got.Name)
	assert.Equal(t, "2024-03-13", got.Date)
	assert.Equal(t, 45.0, got.Protein)
	assert.True(t, got.Active)
}

func TestCreateMeal_DateBounds(t *testing.T) {
	svc := newTestService(t, nil)
	user := uuid.NewString()

	for _, date := range []string{"2024-03-14", "1899-12-31", "13/03/2024", ""} {
		req := validRequest()
		req.Date = date
		_, err := svc.CreateMeal(context.Background(), req, user)
		assert.ErrorIs(t, err, domain.ErrInvalidMealDate, date)
	}

	req := validRequest()
	req.Date = "1900-01-01"
	_, err := svc.CreateMeal(context.Background(), req, user)
	assert.NoError(t, err)
}

func TestCreateMeal_TodayInAppTimezone(t *testing.T) {
	svc := newTestService(t, nil).(*mealService)
	loc := time.FixedZone("UTC+9", 9*60*60)
	svc.loc = loc

	// 21:30 UTC is already the 14th in UTC+9
	req := validRequest()
	req.Date = "2024-03-14"
	_, err := svc.CreateMeal(context.Background(), req, uuid.NewString())
	assert.NoError(t, err)
}

func TestCreateMeal_NegativeMacro(t *testing.T) {
	svc := newTestService(t, nil)
	req := validRequest()
	req.Fats = -2

	_, err := svc.CreateMeal(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNegativeMacro)
}

func TestCreateMeal_InvalidUser(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.CreateMeal(context.Background(), validRequest(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestCreateMeal_UploadsPhoto(t *testing.T) {
	s3 := &fakeS3{}
	svc := newTestService(t, s3)
	user := uuid.NewString()

	req := validRequest()
	req.Image = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="
	res, err := svc.CreateMeal(context.Background(), req, user)
	require.NoError(t, err)

	key := "meals/meal-" + res.ID + ".jpg"
	assert.Contains(t, s3.uploaded, key)

	got, err := svc.GetMealByID(context.Background(), res.ID, user)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/"+key, got.ImageURL)
}

func TestCreateMeal_UploadFailureStillSaves(t *testing.T) {
	svc := newTestService(t, &fakeS3{err: errors.New("bucket unavailable")})
	user := uuid.NewString()

	req := validRequest()
	req.Image = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="
	res, err := svc.CreateMeal(context.Background(), req, user)
	require.NoError(t, err)

	got, err := svc.GetMealByID(context.Background(), res.ID, user)
	require.NoError(t, err)
	assert.Empty(t, got.ImageURL)
}

func TestCreateMeal_InvalidPhoto(t *testing.T) {
	svc := newTestService(t, &fakeS3{})
	req := validRequest()
	req.Image = "data:image/jpeg;base64,"

	_, err := svc.CreateMeal(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestCreateMeal_InvalidPhotoWithoutStorage(t *testing.T) {
	svc := newTestService(t, nil)
	req := validRequest()
	req.Image = "data:image/jpeg;base64,"

	_, err := svc.CreateMeal(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestCreateMeal_PhotoWithoutStorage(t *testing.T) {
	svc := newTestService(t, nil)
	user := uuid.NewString()

	req := validRequest()
	req.Image = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="
	res, err := svc.CreateMeal(context.Background(), req, user)
	require.NoError(t, err)

	got, err := svc.GetMealByID(context.Background(), res.ID, user)
	require.NoError(t, err)
	assert.Empty(t, got.ImageURL)
}

func TestCreateMeal_StoreFailureRemovesPhoto(t *testing.T) {
	s3 := &fakeS3{}
	svc := NewMealService(failingRepository{}, s3, time.UTC).(*mealService)
	svc.now = func() time.Time { return fixedNow }

	req := validRequest()
	req.Image = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="
	_, err := svc.CreateMeal(context.Background(), req, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrStoreFailure)

	require.Len(t, s3.deleted, 1)
	assert.True(t, strings.HasPrefix(s3.deleted[0], "meals/meal-"))
	assert.Empty(t, s3.uploaded)
}

func TestGetMeals_Filters(t *testing.T) {
	svc := newTestService(t, nil)
	user := uuid.NewString()

	var ids []string
	for _, date := range []string{"2024-03-01", "2024-03-05", "2024-03-10"} {
		req := validRequest()
		req.Date = date
		res, err := svc.CreateMeal(context.Background(), req, user)
		require.NoError(t, err)
		ids = append(ids, res.ID)
	}
	require.NoError(t, svc.ArchiveMeal(context.Background(), ids[2], user))

	active, err := svc.GetMeals(context.Background(), user, "", "", "")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := svc.GetMeals(context.Background(), user, domain.MealStatusAll, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ranged, err := svc.GetMeals(context.Background(), user, domain.MealStatusAll, "2024-03-05", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "2024-03-10", ranged[0].Date)
	assert.Equal(t, "2024-03-05", ranged[1].Date)
}

func TestGetMeals_InvalidInput(t *testing.T) {
	svc := newTestService(t, nil)
	user := uuid.NewString()

	_, err := svc.GetMeals(context.Background(), user, "archived", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.GetMeals(context.Background(), user, "", "2024-03-10", "2024-03-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.GetMeals(context.Background(), user, "", "yesterday", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestArchiveMeal_Service(t *testing.T) {
	svc := newTestService(t, nil)
	owner, other := uuid.NewString(), uuid.NewString()

	res, err := svc.CreateMeal(context.Background(), validRequest(), owner)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ArchiveMeal(context.Background(), res.ID, other), domain.ErrMealNotFound)
	assert.ErrorIs(t, svc.ArchiveMeal(context.Background(), "bogus", owner), domain.ErrMealNotFound)
	require.NoError(t, svc.ArchiveMeal(context.Background(), res.ID, owner))

	got, err := svc.GetMealByID(context.Background(), res.ID, owner)
	require.NoError(t, err)
	assert.False(t, got.Active)

	_, err = svc.GetMealByID(context.Background(), res.ID, other)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}
