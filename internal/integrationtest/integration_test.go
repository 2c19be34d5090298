package integrationtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/assistant"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/service"
)

// setupRouter starts the service on an empty directory with the system clock.
func setupRouter() *gin.Engine {
	service.SetupAssistant(assistant.NewDispatcher(model.NewDirectory()), nil)
	gin.SetMode(gin.ReleaseMode)
	return service.SetupHttpRouter(false)
}

// sendCommand posts one input line and returns the reply text.
func sendCommand(t *testing.T, router *gin.Engine, line string) string {
	body, _ := json.Marshal(map[string]string{"line": line})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest("POST", "/commands", strings.NewReader(string(body)))
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code, line)
	var response map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &response)
	reply, _ := response["reply"].(string)
	return reply
}

// TestContactHappyPath tests adding, changing, looking up and deleting a contact.
func TestContactHappyPath(t *testing.T) {
	router := setupRouter()

	// create the contact with two phones and a birthday
	assert.Equal(t, "Contact added.", sendCommand(t, router, "add Erika 0815471100"))
	assert.Equal(t, "Contact updated.", sendCommand(t, router, "add Erika 4711081500"))
	assert.Equal(t, "Birthday for Erika added.", sendCommand(t, router, "add-birthday Erika 02.03.1969"))

	// change the first phone
	assert.Equal(t, "Phone number updated.", sendCommand(t, router, "change Erika 0815471100 1234567890"))
	assert.Equal(t, "Phones for Erika: 1234567890, 4711081500", sendCommand(t, router, "phone Erika"))
	assert.Equal(t, "Erika's birthday is 02.03.1969.", sendCommand(t, router, "show-birthday Erika"))

	// test the endpoint for finding a contact
	getRecorder := httptest.NewRecorder()
	getRequest, _ := http.NewRequest("GET", "/contacts/Erika", nil)
	router.ServeHTTP(getRecorder, getRequest)
	assert.Equal(t, http.StatusOK, getRecorder.Code)
	var getBody map[string]interface{}
	json.Unmarshal(getRecorder.Body.Bytes(), &getBody)
	assert.Equal(t, "Erika", getBody["name"])
	assert.Equal(t, []interface{}{"1234567890", "4711081500"}, getBody["phones"])
	assert.Equal(t, "02.03.1969", getBody["birthday"])
	days, ok := getBody["daysToBirthday"].(float64)
	assert.True(t, ok)
	assert.True(t, days >= 0 && days < 366)

	// test the endpoint for deleting a contact
	deleteRecorder := httptest.NewRecorder()
	deleteRequest, _ := http.NewRequest("DELETE", "/contacts/Erika", nil)
	router.ServeHTTP(deleteRecorder, deleteRequest)
	assert.Equal(t, http.StatusOK, deleteRecorder.Code)

	// test if a final lookup of the contact will correctly not find it
	getFinalRecorder := httptest.NewRecorder()
	getFinalRequest, _ := http.NewRequest("GET", "/contacts/Erika", nil)
	router.ServeHTTP(getFinalRecorder, getFinalRequest)
	assert.Equal(t, http.StatusNotFound, getFinalRecorder.Code)
	assert.Equal(t, "Contact not found.", sendCommand(t, router, "phone Erika"))
}

// TestBirthdayToday tests that a contact whose birthday is today shows up in the upcoming week,
// both as a command and on the birthdays endpoint.
func TestBirthdayToday(t *testing.T) {
	router := setupRouter()
	// 2000 is a leap year, so every day of the current year exists in it.
	now := time.Now().UTC()
	birthday := time.Date(2000, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format("02.01.2006")

	sendCommand(t, router, "add Rudi 1960041300")
	sendCommand(t, router, "add-birthday Rudi "+birthday)
	assert.Equal(t,
		"Upcoming birthdays:\nContact name: Rudi, phones: [1960041300], Birthday: "+birthday,
		sendCommand(t, router, "birthdays"))

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest("GET", "/birthdays", nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var contacts []map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	if assert.Equal(t, 1, len(contacts)) {
		assert.Equal(t, "Rudi", contacts[0]["name"])
		assert.Equal(t, 0.0, contacts[0]["daysToBirthday"])
	}
}

// TestInvalidInput tests that malformed data never breaks the service: every invalid command is
// answered with a message and the directory stays usable.
func TestInvalidInput(t *testing.T) {
	router := setupRouter()
	steps := []struct {
		line  string
		reply string
	}{
		{"add", "Error: Please provide both name and phone number."},
		{"add Hans +49081547", "Error: Phone number must contain exactly 10 digits."},
		{"add-birthday Hans 31.02.1969", "Error: Invalid date format. Use DD.MM.YYYY"},
		{"add-birthday Nobody 01.01.1969", "Contact not found."},
		{"change Hans 0000000000 1111111111", "Phone number not found."},
		{"show-birthday Hans", "Hans has no birthday set."},
		{"phone", "Error: expected 1 arguments, got 0"},
		{"dance", "Invalid command."},
	}
	for _, step := range steps {
		assert.Equal(t, step.reply, sendCommand(t, router, step.line), step.line)
	}
	assert.Equal(t, "Contact updated.", sendCommand(t, router, "add Hans 0815471100"))
}

// TestCommandInvalidBody tests a POST with different forms of invalid request body data.
func TestCommandInvalidBody(t *testing.T) {
	invalidRequestBodies := []string{
		"",
		"not JSON",
		`{"line": "hello" "extra": 1}`, // comma missing
	}

	router := setupRouter()
	for _, body := range invalidRequestBodies {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest("POST", "/commands", strings.NewReader(body))
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "request body: "+body)
	}
}
