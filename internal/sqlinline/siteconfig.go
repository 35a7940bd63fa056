package sqlinline

const QCountSiteConfig = `--sql ac2885fa-eff7-4dbb-ad62-233a4685a055
select count(*) from site_config;
`

const QInsertDefaultSiteConfig = `--sql 5e2663f1-1cb2-42fc-8e3b-ce65185d32f5
insert into site_config(site_title, wedding_date, pix_key, pix_description, pix_qrcode_image,
                        mp_public_key, mp_access_token, mp_webhook_secret, mp_notification_url,
                        created_at, updated_at)
values ($1::text, '', '', '', '', '', '', '', '', now(), now())
returning id;
`

const QSelectEarliestSiteConfig = `--sql f858ea26-f127-4b11-a552-866247647e2f
select id, site_title, wedding_date, pix_key, pix_description, pix_qrcode_image,
       mp_public_key, mp_access_token, mp_webhook_secret, mp_notification_url,
       created_at, updated_at
from site_config
order by id asc
limit 1;
`

const QDeleteDuplicateSiteConfig = `--sql 189f1bde-4c6a-43d3-80a1-2c23bdaf7c52
delete from site_config where id <> $1::bigint;
`

const QUpdateSiteConfig = `--sql 7900b1d5-8e4c-4741-8515-1250c4ba9c51
update site_config
set site_title = $2::text, wedding_date = $3::text, pix_key = $4::text,
    pix_description = $5::text, pix_qrcode_image = $6::text, mp_public_key = $7::text,
    mp_access_token = $8::text, mp_webhook_secret = $9::text, mp_notification_url = $10::text,
    updated_at = now()
where id = $1::bigint;
`
