package eventportal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// fakePortal is an in-memory Event Portal that enforces name and version
// uniqueness with the service's own error wording.
type fakePortal struct {
	mu sync.Mutex

	nextID   int
	domains  []*fakeObject
	objects  map[string][]*fakeObject // keyed by collection path
	versions map[string][]*fakeVersion

	requests []string
	headers  []http.Header
}

type fakeObject struct {
	ID       string
	Name     string
	DomainID string
}

type fakeVersion struct {
	ID       string
	ParentID string
	Version  string
	StateID  string
	Body     map[string]interface{}
}

// versionConflictMessages is what the service answers when a version string
// is reused under the same parent.
var versionConflictMessages = map[string]string{
	"schemas":      "Version '%s' is already in use by another schemaVersion",
	"events":       "eventVersion has been passed in an invalid format: version '%s' is already used",
	"applications": "applicationVersion has been passed in an invalid format: version '%s' is already used",
}

var versionCollections = map[string]string{
	"schemaVersions":      "schemas",
	"eventVersions":       "events",
	"applicationVersions": "applications",
}

func newFakePortal() *fakePortal {
	return &fakePortal{
		objects:  map[string][]*fakeObject{},
		versions: map[string][]*fakeVersion{},
	}
}

// newTestClient starts a fake portal and returns a client pointed at it.
func newTestClient(t *testing.T) (*Client, *fakePortal) {
	t.Helper()

	portal := newFakePortal()
	server := httptest.NewServer(portal.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(Config{Token: testToken, BaseURL: server.URL})
	require.NoError(t, err)
	return client, portal
}

func (p *fakePortal) id() string {
	p.nextID++
	return "id" + strconv.Itoa(p.nextID)
}

// seedObject stores an object without any uniqueness check.
func (p *fakePortal) seedObject(collection, domainID, name string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	obj := &fakeObject{ID: p.id(), Name: name, DomainID: domainID}
	p.objects[collection] = append(p.objects[collection], obj)
	return obj.ID
}

// setState moves a stored version to stateID, as a release would.
func (p *fakePortal) setState(versionID, stateID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, vs := range p.versions {
		for _, v := range vs {
			if v.ID == versionID {
				v.StateID = stateID
			}
		}
	}
}

func (p *fakePortal) version(versionID string) *fakeVersion {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, vs := range p.versions {
		for _, v := range vs {
			if v.ID == versionID {
				return v
			}
		}
	}
	return nil
}

// calls returns the recorded requests as "METHOD path".
func (p *fakePortal) calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.requests...)
}

func (p *fakePortal) countCalls(method string) int {
	n := 0
	for _, c := range p.calls() {
		if strings.HasPrefix(c, method+" ") {
			n++
		}
	}
	return n
}

func (p *fakePortal) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /applicationDomains", p.createDomain)
	mux.HandleFunc("GET /applicationDomains", p.listDomains)
	mux.HandleFunc("GET /applicationDomains/{id}", p.getDomain)

	mux.HandleFunc("POST /{collection}", p.createObject)
	mux.HandleFunc("GET /{collection}", p.listObjects)
	mux.HandleFunc("GET /{collection}/{id}", p.getObject)
	mux.HandleFunc("POST /{collection}/{id}/versions", p.createVersion)
	mux.HandleFunc("GET /{collection}/{id}/versions", p.listVersions)
	mux.HandleFunc("PATCH /{collection}/{id}/versions/{versionID}", p.patchVersion)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		p.requests = append(p.requests, r.Method+" "+r.URL.Path)
		p.headers = append(p.headers, r.Header.Clone())
		p.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func writeList(w http.ResponseWriter, data []map[string]interface{}) {
	if data == nil {
		data = []map[string]interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data": data,
		"meta": map[string]interface{}{
			"pagination": map[string]interface{}{"pageNumber": 1, "count": len(data), "pageSize": 20, "totalPages": 1},
		},
	})
}

func writeError(w http.ResponseWriter, status int, key, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"errorKey": key, "message": message})
}

func decodeBody(r *http.Request) map[string]interface{} {
	body := map[string]interface{}{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}

func str(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}

func (o *fakeObject) data() map[string]interface{} {
	d := map[string]interface{}{"id": o.ID, "name": o.Name}
	if o.DomainID != "" {
		d["applicationDomainId"] = o.DomainID
	}
	return d
}

func (v *fakeVersion) data() map[string]interface{} {
	d := map[string]interface{}{}
	for k, val := range v.Body {
		d[k] = val
	}
	d["id"] = v.ID
	d["version"] = v.Version
	d["stateId"] = v.StateID
	return d
}

func (p *fakePortal) createDomain(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	name := str(body, "name")

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.domains {
		if d.Name == name {
			writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("Application domain with name %s already exists", name))
			return
		}
	}
	d := &fakeObject{ID: p.id(), Name: name}
	p.domains = append(p.domains, d)
	writeData(w, http.StatusCreated, d.data())
}

func (p *fakePortal) listDomains(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	ids := r.URL.Query().Get("ids")

	p.mu.Lock()
	defer p.mu.Unlock()
	var out []map[string]interface{}
	for _, d := range p.domains {
		if name != "" && d.Name != name {
			continue
		}
		if ids != "" && !containsID(ids, d.ID) {
			continue
		}
		out = append(out, d.data())
	}
	writeList(w, out)
}

func (p *fakePortal) getDomain(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.domains {
		if d.ID == r.PathValue("id") {
			writeData(w, http.StatusOK, d.data())
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "Could not find application domain")
}

func (p *fakePortal) createObject(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	body := decodeBody(r)
	name, domainID := str(body, "name"), str(body, "applicationDomainId")
	label := strings.TrimSuffix(collection, "s")

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, o := range p.objects[collection] {
		if o.Name == name && o.DomainID == domainID {
			writeError(w, http.StatusBadRequest, "invalid_request",
				fmt.Sprintf("The %s name %q must be unique within application domain", label, name))
			return
		}
	}
	o := &fakeObject{ID: p.id(), Name: name, DomainID: domainID}
	p.objects[collection] = append(p.objects[collection], o)
	writeData(w, http.StatusCreated, o.data())
}

func (p *fakePortal) listObjects(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	query := r.URL.Query()

	p.mu.Lock()
	defer p.mu.Unlock()
	var out []map[string]interface{}
	for _, o := range p.objects[collection] {
		if name := query.Get("name"); name != "" && o.Name != name {
			continue
		}
		if domainID := query.Get("applicationDomainId"); domainID != "" && o.DomainID != domainID {
			continue
		}
		out = append(out, o.data())
	}
	writeList(w, out)
}

func (p *fakePortal) getObject(w http.ResponseWriter, r *http.Request) {
	collection, id := r.PathValue("collection"), r.PathValue("id")

	p.mu.Lock()
	defer p.mu.Unlock()

	if parent, ok := versionCollections[collection]; ok {
		for _, v := range p.versions[parent] {
			if v.ID == id {
				writeData(w, http.StatusOK, v.data())
				return
			}
		}
	}
	for _, o := range p.objects[collection] {
		if o.ID == id {
			writeData(w, http.StatusOK, o.data())
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "Could not find "+collection+" "+id)
}

func (p *fakePortal) createVersion(w http.ResponseWriter, r *http.Request) {
	collection, parentID := r.PathValue("collection"), r.PathValue("id")
	body := decodeBody(r)
	version := str(body, "version")

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, v := range p.versions[collection] {
		if v.ParentID == parentID && v.Version == version {
			writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf(versionConflictMessages[collection], version))
			return
		}
	}

	stateID := str(body, "stateId")
	if stateID == "" {
		stateID = "1"
	}
	v := &fakeVersion{ID: p.id(), ParentID: parentID, Version: version, StateID: stateID, Body: body}
	p.versions[collection] = append(p.versions[collection], v)
	writeData(w, http.StatusCreated, v.data())
}

func (p *fakePortal) listVersions(w http.ResponseWriter, r *http.Request) {
	collection, parentID := r.PathValue("collection"), r.PathValue("id")
	version := r.URL.Query().Get("version")

	p.mu.Lock()
	defer p.mu.Unlock()
	var out []map[string]interface{}
	for _, v := range p.versions[collection] {
		if v.ParentID != parentID || (version != "" && v.Version != version) {
			continue
		}
		out = append(out, v.data())
	}
	writeList(w, out)
}

func (p *fakePortal) patchVersion(w http.ResponseWriter, r *http.Request) {
	collection, versionID := r.PathValue("collection"), r.PathValue("versionID")
	body := decodeBody(r)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, v := range p.versions[collection] {
		if v.ID != versionID {
			continue
		}
		if v.StateID != "1" {
			writeError(w, http.StatusBadRequest, "invalid_request", "Only versions in DRAFT state can be updated")
			return
		}
		for k, val := range body {
			if k != "stateId" {
				v.Body[k] = val
			}
		}
		writeData(w, http.StatusOK, v.data())
		return
	}
	writeError(w, http.StatusNotFound, "not_found", "Could not find version "+versionID)
}

func containsID(ids, id string) bool {
	for _, candidate := range strings.Split(ids, ",") {
		if candidate == id {
			return true
		}
	}
	return false
}

func jsonUnmarshal(body string, out any) error {
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}
